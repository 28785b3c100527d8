package main

import (
	"fmt"

	"github.com/spboyer/passgen/internal/entropy"
	"github.com/spboyer/passgen/internal/projectconfig"
	"github.com/spf13/cobra"
)

var (
	entropyWords     int
	entropyVocabSize int
	entropyWordlist  string
	entropyMinimum   string
)

func newEntropyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entropy",
		Short: "Show the entropy of a passphrase scheme",
		Long: `Entropy prints how many bits of entropy a passphrase of --words words
carries when drawn uniformly from the word list, and the strength band those
bits fall in.

The vocabulary size comes from --vocab-size when given, otherwise from the
configured word list.`,
		Args: cobra.NoArgs,
		RunE: entropyCommandE,
	}

	cmd.Flags().IntVarP(&entropyWords, "words", "n", projectconfig.DefaultWordCount, "Number of words per passphrase")
	cmd.Flags().IntVar(&entropyVocabSize, "vocab-size", 0, "Vocabulary size (default: size of the configured word list)")
	cmd.Flags().StringVar(&entropyWordlist, "wordlist", "", "Newline-separated word list (default: BIP-39 English)")
	cmd.Flags().StringVar(&entropyMinimum, "min-strength", "", "Fail unless the scheme reaches this band (e.g. strong)")

	return cmd
}

func entropyCommandE(cmd *cobra.Command, _ []string) error {
	var minimum entropy.Strength
	if entropyMinimum != "" {
		var err error
		if minimum, err = entropy.ParseStrength(entropyMinimum); err != nil {
			return err
		}
	}

	size := entropyVocabSize
	source := "--vocab-size"
	if !cmd.Flags().Changed("vocab-size") {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path := cfg.WordlistPath()
		if cmd.Flags().Changed("wordlist") {
			path = entropyWordlist
		}
		vocab, err := loadVocabulary(path)
		if err != nil {
			return err
		}
		size = vocab.Size()
		source = vocab.Source()
	}

	bits := entropy.Bits(entropyWords, size)
	strength := entropy.Classify(bits)

	printer.Fprintf(cmd.OutOrStdout(), "%d bits (%s): %d words from %d (%s)\n", //nolint:errcheck
		bits, strength, entropyWords, size, source)

	if minimum != "" && !strength.AtLeast(minimum) {
		return fmt.Errorf("%d bits is %s, below the required %s", bits, strength, minimum)
	}
	return nil
}
