/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"minter/domain/config"
	"minter/interface/exporter"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Starts the metrics exporter",
	Long:  `Starts the metrics exporter and the task that collects account statistics. Stop it with Ctrl+C.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("start called.")

		defaultDependencyInject()
		exporter.Init()

		quit := make(chan bool)

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{Addr: config.GetMetricsAddress(), Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("🔴 metrics server - %v\n", err.Error())
			}
		}()

		collect()
		collectTicker := schedule(collect, config.GetCollectInterval(), quit)

		signal.Ignore()
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		s := <-stop
		log.Printf("Got signal '%v', stopping", s)

		collectTicker.Stop()
		close(quit)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	},
}

func schedule(task func(), interval time.Duration, done chan bool) *time.Ticker {
	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {

			case <-ticker.C:
				ticker.Stop()
				task()
				ticker.Reset(interval)

			case <-done:
				return
			}
		}
	}()
	return ticker
}

func collect() {
	result, err := statisticInteractor.Statistic(context.Background())
	if err != nil {
		log.Printf("🔴 collecting statistics - %v\n", err.Error())
		exporter.IncErrorCount()
		return
	}

	exporter.SetPendingCount(result.PendingInstructions, result.PendingSignatures)
	exporter.SetMasterAgentCount(result.MasterAgents)
}

func init() {
	rootCmd.AddCommand(startCmd)
}
