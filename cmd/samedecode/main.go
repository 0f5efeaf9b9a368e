package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/samecodec/sameeas/pkg/dictionary"
	"github.com/samecodec/sameeas/pkg/same"
)

func main() {
	var (
		dictPath = flag.String("dictionary", "dictionary.json", "Path to the code dictionary artifact")
		header   = flag.String("header", "", "SAME header to decode, e.g. ZCZC-WXR-TOR-...")
		asJSON   = flag.Bool("json", false, "Print the decoded alert as JSON")
	)
	flag.Parse()

	if *header == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -header \"ZCZC-WXR-TOR-...\" [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	dict, err := dictionary.LoadFile(*dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load dictionary: %v\n", err)
		os.Exit(1)
	}

	alert, err := same.Decode(dict, *header)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decode failed: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(alert); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode result: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Organization: %s\n", alert.Organization)
	fmt.Printf("Event:        %s\n", alert.Event)
	fmt.Printf("Locations:    %s\n", alert.Locations)
	fmt.Printf("Valid:        %s to %s\n", alert.Timing.Start, alert.Timing.End)
	fmt.Printf("Sender:       %s\n", alert.Sender)
	fmt.Printf("\n%s\n", alert.Formatted)
}
