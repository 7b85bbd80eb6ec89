package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/suphakit/gpu-advisor/internal/catalog"
	"github.com/suphakit/gpu-advisor/internal/config"
	"github.com/suphakit/gpu-advisor/internal/db"
	"github.com/suphakit/gpu-advisor/internal/scraper"
	"github.com/suphakit/gpu-advisor/internal/store/rabbitmq"
)

func main() {
	direct := flag.Bool("direct", false, "write products straight to the database instead of publishing to the queue")
	reset := flag.Bool("reset", false, "delete the existing catalog before writing (only with -direct)")
	flag.Parse()

	cfg := config.Load()

	s := scraper.New(cfg.ScrapeBaseURL)

	start := time.Now()
	products, err := s.Scrape()
	if err != nil {
		log.Fatalf("scrape: %v", err)
	}
	log.Printf("scraped %d products in %s", len(products), time.Since(start))

	ctx := context.Background()

	if *direct {
		gdb := db.Connect(cfg.DBDSN)
		repo := catalog.NewRepo(gdb)

		if *reset {
			if err := repo.DeleteAll(ctx); err != nil {
				log.Fatalf("reset catalog: %v", err)
			}
			log.Printf("catalog cleared")
		}

		for i := range products {
			if err := repo.Upsert(ctx, &products[i]); err != nil {
				log.Printf("upsert %q failed: %v", products[i].Name, err)
			}
		}
		count, _ := repo.Count(ctx)
		log.Printf("catalog now holds %d products", count)
		return
	}

	pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
	if err != nil {
		log.Fatalf("rabbit connect: %v", err)
	}
	defer pub.Close()

	published := 0
	for _, p := range products {
		if err := pub.PublishProduct(ctx, p); err != nil {
			log.Printf("publish %q failed: %v", p.Name, err)
			continue
		}
		published++
	}
	log.Printf("published %d/%d products to %s", published, len(products), cfg.RabbitQueue)
}
