package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/athapong/vtt-mcp/pkg/ast"
	"github.com/athapong/vtt-mcp/pkg/extension"
)

var (
	pipelineProcessingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "pipeline_processing_duration_seconds",
			Help: "Time spent processing documents in pipeline",
		},
		[]string{"status"},
	)

	documentProcessedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_documents_processed_total",
			Help: "Total number of documents processed",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(pipelineProcessingDuration)
	prometheus.MustRegister(documentProcessedTotal)
}

// Invoker runs a single extension invocation
type Invoker interface {
	Invoke(ctx context.Context, inv extension.Invocation) (extension.Result, error)
}

// Document is one invocation travelling through the pipeline
type Document struct {
	ID         string
	Source     string
	Invocation extension.Invocation

	// Set by Process
	Output   []*ast.Node
	Counters map[string]int
	Err      error
}

// NewDocument creates a document with a fresh ID
func NewDocument(source string, inv extension.Invocation) *Document {
	return &Document{
		ID:         uuid.New().String(),
		Source:     source,
		Invocation: inv,
	}
}

// Pipeline runs documents through an extension registry
type Pipeline struct {
	invoker   Invoker
	logger    *logrus.Logger
	batchSize int
}

// NewPipeline creates a pipeline backed by invoker
func NewPipeline(invoker Invoker, logger *logrus.Logger) *Pipeline {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return &Pipeline{
		invoker:   invoker,
		logger:    logger,
		batchSize: 10,
	}
}

// SetBatchSize sets how many documents are processed concurrently
func (p *Pipeline) SetBatchSize(n int) {
	if n > 0 {
		p.batchSize = n
	}
}

// BatchProcess processes docs in concurrent batches. Every document is
// attempted; failures are recorded on the document and summarised in the
// returned error. Cancelling ctx stops before the next batch.
func (p *Pipeline) BatchProcess(ctx context.Context, docs []*Document) error {
	p.logger.WithField("document_count", len(docs)).Info("Starting batch processing")

	failed := 0
	for i := 0; i < len(docs); i += p.batchSize {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "batch processing interrupted")
		}

		end := i + p.batchSize
		if end > len(docs) {
			end = len(docs)
		}

		var wg sync.WaitGroup
		for _, doc := range docs[i:end] {
			wg.Add(1)
			go func(d *Document) {
				defer wg.Done()
				p.Process(ctx, d)
			}(doc)
		}
		wg.Wait()

		for _, doc := range docs[i:end] {
			if doc.Err != nil {
				failed++
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("batch processing failed for %d of %d documents", failed, len(docs))
	}
	p.logger.Info("Batch processing completed successfully")
	return nil
}

// Process runs a single document and records the outcome on it
func (p *Pipeline) Process(ctx context.Context, doc *Document) error {
	if doc == nil {
		return errors.New("cannot process nil document")
	}

	log := p.logger.WithFields(logrus.Fields{
		"doc_id":    doc.ID,
		"source":    doc.Source,
		"extension": doc.Invocation.Name,
	})

	timer := prometheus.NewTimer(pipelineProcessingDuration.WithLabelValues("single"))
	result, err := p.invoker.Invoke(ctx, doc.Invocation)
	timer.ObserveDuration()

	if err != nil {
		log.WithError(err).Error("Failed to process document")
		documentProcessedTotal.WithLabelValues("error").Inc()
		doc.Err = err
		return err
	}

	doc.Output = result.Nodes
	doc.Counters = result.Counters
	doc.Err = nil
	documentProcessedTotal.WithLabelValues("success").Inc()
	log.WithField("counters", result.Counters).Debug("Document processing completed")
	return nil
}
