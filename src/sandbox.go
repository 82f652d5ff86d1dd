package main

import (
	"context"
	"flag"
	"log"

	"github.com/localclaim/localclaim/src/localclaim/mdns/responder"
	"github.com/localclaim/localclaim/src/localclaim/names"

	"github.com/dogmatiq/dodeca/logging"
)

func main() {
	hostname := flag.String("hostname", "", "base hostname to claim (defaults to the machine hostname)")
	flag.Parse()

	options := []responder.Option{
		responder.UseLogger(logging.DebugLogger),
	}

	if *hostname != "" {
		h, err := names.ParseHost(*hostname)
		if err != nil {
			log.Fatal(err)
		}

		options = append(options, responder.UseHostname(h))
	}

	r, err := responder.New(options...)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		for ev := range r.Events() {
			switch e := ev.(type) {
			case responder.HostnameConfirmed:
				log.Printf("claimed hostname: %s", e.Name)
			case responder.Error:
				log.Printf("error: %s", e.Err)
			}
		}
	}()

	if err := r.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
