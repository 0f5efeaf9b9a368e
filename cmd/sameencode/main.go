package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/samecodec/sameeas/pkg/afsk"
	"github.com/samecodec/sameeas/pkg/assembler"
	"github.com/samecodec/sameeas/pkg/transcode"
)

func main() {
	var (
		zczc          = flag.String("message", "", "ZCZC header to encode, e.g. ZCZC-WXR-TOR-...")
		mode          = flag.String("mode", "DEFAULT", "Hardware encoder mode: DEFAULT, NWS, SAGE, TRILITHIC, DIGITAL")
		attentionTone = flag.Bool("attention", true, "Include the attention tone")
		audioPath     = flag.String("audio", "", "Optional narration audio file to mix in")
		output        = flag.String("output", "output.wav", "Output file (.wav or .mp3)")
		ffmpegBin     = flag.String("ffmpeg", "ffmpeg", "Path to the ffmpeg-compatible transcoder binary")
		workDir       = flag.String("workdir", "", "Scratch directory for transcoder temp files")
	)
	flag.Parse()

	if *zczc == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -message \"ZCZC-WXR-TOR-...\" [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	parsedMode, err := afsk.ParseMode(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid mode: %v\n", err)
		os.Exit(1)
	}

	tc := transcode.New(*ffmpegBin, *workDir)
	asm := assembler.New(tc, nil)

	opts := assembler.DefaultOptions()
	opts.Mode = parsedMode
	opts.AttentionTone = *attentionTone
	opts.AudioPath = *audioPath
	opts.OutputFile = *output

	result, err := asm.Generate(context.Background(), *zczc, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d samples, %.2fs)\n", *output, len(result.Samples), float64(len(result.Samples))/afsk.SampleRate)
	for _, d := range result.Diagnostics {
		fmt.Fprintf(os.Stderr, "warning [%s]: %v\n", d.Stage, d.Err)
	}
}
