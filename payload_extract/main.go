package main

import (
	"flag"
	"log"
	"os"

	"github.com/BertoldVdb/efi-tools/payload"
	"github.com/dustin/go-humanize"
)

func main() {
	input := flag.String("input", "/tmp/InstallAssistantAuto/Payload", "Input payload filename")
	output := flag.String("output", "/tmp/FirmwareUpdate/Scripts/Tools/EFIPayloads", "Output directory")
	flag.Parse()

	in, err := os.Open(*input)
	if err != nil {
		log.Fatalln("Failed to open file:", err)
	}
	defer in.Close()

	files, err := payload.ExtractFirmware(in, *output)
	for _, m := range files {
		log.Printf("Extracted %s (%s) to %s", m.Source, humanize.Bytes(uint64(m.Size)), m.Path)
	}
	if err != nil {
		log.Fatalln("Failed to extract payload:", err)
	}

	log.Printf("%d firmware images written to %s", len(files), *output)
}
