package main

import (
	"fmt"
	"os"

	huffman "github.com/chronos-tachyon/huffcode"
)

func makeCode(inputPath, codePath string) error {
	input, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer input.Close()

	var freqs huffman.Frequencies
	if _, err := freqs.ReadFrom(input); err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	var tree huffman.Tree
	tree.Init(&freqs)

	return writeFile(codePath, func(f *os.File) error {
		_, err := tree.Save(f)
		if err == nil {
			log.Infof("wrote code for %d symbols to %s", tree.Len(), codePath)
		}
		return err
	})
}

func compress(inputPath, codePath, outputPath string) error {
	tree, err := loadTree(codePath)
	if err != nil {
		return err
	}

	input, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer input.Close()

	return writeFile(outputPath, func(f *os.File) error {
		n, err := huffman.Compress(f, input, tree)
		if err == nil {
			log.Infof("wrote %d bytes to %s", n, outputPath)
		}
		return err
	})
}

func decompress(inputPath, codePath, outputPath string) error {
	tree, err := loadTree(codePath)
	if err != nil {
		return err
	}

	input, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer input.Close()

	return writeFile(outputPath, func(f *os.File) error {
		n, err := huffman.Decompress(f, input, tree)
		if err == nil {
			log.Infof("wrote %d bytes to %s", n, outputPath)
		}
		return err
	})
}

func loadTree(codePath string) (huffman.Tree, error) {
	var tree huffman.Tree

	f, err := os.Open(codePath)
	if err != nil {
		return tree, err
	}
	defer f.Close()

	table, err := huffman.ReadTable(f)
	if err != nil {
		return tree, fmt.Errorf("%s: %w", codePath, err)
	}
	if err := tree.InitFromTable(table); err != nil {
		return tree, fmt.Errorf("%s: %w", codePath, err)
	}
	log.Debugf("loaded %v from %s", tree, codePath)
	return tree, nil
}

// writeFile creates path, calls fn, and removes the file again if
// anything fails.
func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = fn(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
