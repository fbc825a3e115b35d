package huffman

import (
	"os"
	"testing"

	logging "github.com/op/go-logging"
)

func TestMain(m *testing.M) {
	logging.SetLevel(logging.WARNING, "huffman")
	os.Exit(m.Run())
}
