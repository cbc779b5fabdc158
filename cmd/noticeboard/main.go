package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/noticeboard-dev/noticeboard/internal/config"
	"github.com/noticeboard-dev/noticeboard/internal/domain"
	"github.com/noticeboard-dev/noticeboard/internal/export"
	"github.com/noticeboard-dev/noticeboard/internal/feed"
	"github.com/noticeboard-dev/noticeboard/internal/logger"
	"github.com/noticeboard-dev/noticeboard/internal/render"
	"github.com/noticeboard-dev/noticeboard/internal/source"
	"github.com/noticeboard-dev/noticeboard/internal/vocab"
)

func main() {
	log.SetFlags(log.Lshortfile)

	var (
		configPath string
		snapshot   string
		query      string
		onDay      string
		category   string
		tag        string
		icsOut     string
	)
	flag.StringVar(&configPath, "config", "config/noticeboard.yaml", "path to config file")
	flag.StringVar(&snapshot, "snapshot", "", "path to store export (overrides config)")
	flag.StringVar(&query, "search", "", "substring search over title/description")
	flag.StringVar(&onDay, "on", "", "list events on this day (2006-01-02)")
	flag.StringVar(&category, "category", "", "filter by category")
	flag.StringVar(&tag, "tag", "", "filter by tag")
	flag.StringVar(&icsOut, "ics", "", "write listed events to this .ics file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger.Initialize(cfg.Logging.Level, cfg.Logging.JSON)

	if snapshot == "" {
		snapshot = cfg.Snapshot
	}
	docs, err := source.Load(snapshot)
	if err != nil {
		log.Fatal(err)
	}

	f := feed.Build(docs, vocab.New(cfg.Categories))

	var events []domain.Event
	switch {
	case query != "":
		events = f.Search(query)
	case onDay != "":
		day, err := time.Parse("2006-01-02", onDay)
		if err != nil {
			log.Fatal(err)
		}
		events = f.On(day)
	case category != "":
		events = f.WithCategory(domain.Category(category))
	case tag != "":
		events = f.WithTag(tag)
	default:
		events = f.VisibleOn(time.Now())
	}

	if icsOut != "" {
		if err := os.WriteFile(icsOut, []byte(export.Calendar(events)), 0o644); err != nil {
			log.Fatal(err)
		}
		logger.Log.Info("wrote calendar export", "path", icsOut, "events", len(events))
		return
	}

	for i := range events {
		printEvent(&events[i])
	}
}

func printEvent(e *domain.Event) {
	fmt.Printf("%s  [%s]  %s\n", e.DisplayDate(), e.Category, e.Title)
	if e.Location != nil {
		fmt.Printf("    at %s", *e.Location)
		if e.Time != nil {
			fmt.Printf(", %s", *e.Time)
		}
		fmt.Println()
	} else if e.Time != nil {
		fmt.Printf("    %s\n", *e.Time)
	}
	if deadline, ok := e.DisplayDeadline(); ok {
		fmt.Printf("    apply by %s\n", deadline)
	}
	fmt.Printf("    %s\n", render.Description(e))
}
