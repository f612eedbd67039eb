package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	lib "github.com/theoremus-urban-solutions/transport-watcher"
	"github.com/theoremus-urban-solutions/transport-watcher/config"
	"github.com/theoremus-urban-solutions/transport-watcher/lines"
	"github.com/theoremus-urban-solutions/transport-watcher/storage"
)

func main() {
	mode := flag.String("mode", "serve", "serve|build-graph|update-weights|import-stations|import-schedules")
	input := flag.String("input", "", "CSV file for the import modes")
	flag.Parse()

	lib.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}

	repo := openRepository()
	lineTable := loadLines()
	svc := lib.NewGraphService(repo, lineTable, lib.OptionsFromConfig())

	switch *mode {
	case "serve":
		serve(svc, repo)
	case "build-graph":
		if err := svc.RebuildBaseGraph(context.Background()); err != nil {
			panic(err)
		}
	case "update-weights":
		if err := svc.LoadGraphs(); err != nil {
			panic(err)
		}
		if err := svc.UpdateWeightedGraph(context.Background()); err != nil {
			panic(err)
		}
	case "import-stations":
		runImport(repo, *input, repo.ImportStationsCSV)
	case "import-schedules":
		runImport(repo, *input, repo.ImportSchedulesCSV)
	default:
		panic("unknown mode")
	}
}

func serve(svc *lib.GraphService, repo *storage.Repository) {
	if err := svc.LoadGraphs(); err != nil {
		// A missing snapshot is recoverable when a database is configured:
		// rebuild from schedules instead of failing startup.
		if repo == nil {
			panic(err)
		}
		log.Printf("loading graphs failed (%v), rebuilding from database", err)
		if err := svc.RebuildBaseGraph(context.Background()); err != nil {
			panic(err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if repo != nil {
		interval := time.Duration(config.Config.Graph.UpdateIntervalMinutes) * time.Minute
		go lib.RunScheduledUpdates(ctx, svc, interval)
	}

	server := lib.NewServer(svc, repo)
	server.Start()
	server.HandleGracefulShutdown()
	cancel()
}

func openRepository() *storage.Repository {
	dsn := config.Config.Database.DSN
	if dsn == "" {
		log.Printf("no database configured, running from persisted graphs only")
		return nil
	}
	repo, err := storage.Open(dsn)
	if err != nil {
		panic(err)
	}
	return repo
}

func loadLines() *lines.Table {
	path := config.Config.Lines.TablePath
	if path == "" {
		return nil
	}
	t, err := lines.Load(path)
	if err != nil {
		log.Printf("line table unavailable (%v), falling back to raw codes", err)
		return nil
	}
	return t
}

func runImport(repo *storage.Repository, path string, importer func(context.Context, io.Reader) (storage.ImportReport, error)) {
	if repo == nil {
		panic("import modes require database.dsn in config")
	}
	if path == "" {
		panic("import modes require -input <file.csv>")
	}
	f, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer func() { _ = f.Close() }()
	report, err := importer(context.Background(), f)
	if err != nil {
		panic(err)
	}
	fmt.Printf("imported %d rows, dropped %d\n", report.Imported, report.Dropped)
}
