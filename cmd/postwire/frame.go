package main

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/kungfusheep/postwire"
	"github.com/spf13/cobra"
)

// frameAndCompress wraps raw as a single CRC32-checked postwire byte
// value, COBS-frames the result, and zstd-compresses that frame — the
// at-rest companion to a link that exchanges COBS frames live, grounded in
// SnellerInc/sneller's use of klauspost/compress.
func frameAndCompress(raw []byte) ([]byte, error) {
	checksummed := postwire.NewChecksum(postwire.NewGrowable(), postwire.NewCRC32IEEE())
	s := postwire.NewSerializer(checksummed)
	if err := s.Bytes(raw); err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	framed, err := s.Finalize()
	if err != nil {
		return nil, fmt.Errorf("append checksum: %w", err)
	}

	cobsFramed, err := postwire.EncodeCobs(framed)
	if err != nil {
		return nil, fmt.Errorf("cobs frame: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(cobsFramed, nil), nil
}

// unframeAndDecompress reverses frameAndCompress: zstd-decompress, undo
// the COBS framing, then verify the CRC32 trailer while reading the
// payload back out.
func unframeAndDecompress(compressed []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	cobsFramed, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}

	framed, err := postwire.DecodeCobs(cobsFramed)
	if err != nil {
		return nil, fmt.Errorf("cobs decode: %w", err)
	}

	verifier := postwire.NewChecksumVerifier(postwire.NewSliceSource(framed), postwire.NewCRC32IEEE())
	d := postwire.NewDeserializer(verifier)
	raw, err := d.Bytes()
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if _, err := d.Remainder(); err != nil {
		return nil, fmt.Errorf("verify checksum: %w", err)
	}
	return raw, nil
}

func newCompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compress <input> <output>",
		Short: "CRC-check, COBS-frame, and zstd-compress a file for at-rest storage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			out, err := frameAndCompress(raw)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[1], out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			log.WithField("bytes", len(out)).Info("wrote compressed frame")
			return nil
		},
	}
}

func newDecompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompress <input> <output>",
		Short: "Reverse compress: decompress, deframe, and verify a stored file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			compressed, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			raw, err := unframeAndDecompress(compressed)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[1], raw, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			log.WithField("bytes", len(raw)).Info("wrote verified payload")
			return nil
		},
	}
}
