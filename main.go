package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/athapong/vtt-mcp/prompts"
	"github.com/athapong/vtt-mcp/resources"
	"github.com/athapong/vtt-mcp/services"
	"github.com/athapong/vtt-mcp/tools"
)

func main() {
	envFile := flag.String("env", ".env", "Path to environment file")
	enableSSE := flag.Bool("sse", false, "Enable SSE server")
	sseAddr := flag.String("sse-addr", ":8080", "Address for SSE server to listen on")
	sseBasePath := flag.String("sse-base-path", "/mcp", "Base path for SSE endpoints")
	metricsAddr := flag.String("metrics-addr", "", "Address for the Prometheus /metrics endpoint (disabled when empty)")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading env file %s: %v\n", *envFile, err)
	}
	logger := services.Logger()

	mcpServer := server.NewMCPServer(
		"vtt-mcp",
		"1.0.0",
		server.WithLogging(),
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithResourceCapabilities(true, true),
	)

	tools.RegisterToolManagerTool(mcpServer)

	enableTools := strings.Split(os.Getenv("ENABLE_TOOLS"), ",")
	allToolsEnabled := len(enableTools) == 1 && enableTools[0] == ""

	isEnabled := func(toolName string) bool {
		return allToolsEnabled || slices.Contains(enableTools, toolName)
	}

	if isEnabled("vtt") {
		tools.RegisterTranscriptTool(mcpServer)
		prompts.RegisterInterviewPrompts(mcpServer)
	}

	if isEnabled("annotation") {
		tools.RegisterAnnotationTool(mcpServer)
	}

	if isEnabled("render") {
		tools.RegisterRenderTool(mcpServer)
	}

	resources.RegisterExtensionCatalog(mcpServer)

	if *metricsAddr == "" {
		*metricsAddr = os.Getenv("METRICS_ADDR")
	}
	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			logger.WithField("addr", *metricsAddr).Info("Serving metrics")
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				logger.WithError(err).Error("Metrics server stopped")
			}
		}()
	}

	// Check if SSE server should be enabled
	if *enableSSE || os.Getenv("ENABLE_SSE") == "true" {
		sseServer := server.NewSSEServer(
			mcpServer,
			server.WithBasePath(*sseBasePath),
			server.WithKeepAlive(true),
		)

		go func() {
			logger.Infof("Starting SSE server on %s with base path %s", *sseAddr, *sseBasePath)
			if err := sseServer.Start(*sseAddr); err != nil {
				logger.Fatalf("Failed to start SSE server: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		sig := <-sigCh
		logger.Infof("Received signal %v, shutting down...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := sseServer.Shutdown(ctx); err != nil {
			logger.WithError(err).Error("Error during SSE server shutdown")
		}
		logger.Info("SSE server shutdown complete")
	} else {
		if err := server.ServeStdio(mcpServer); err != nil {
			panic(fmt.Sprintf("Server error: %v", err))
		}
	}
}
