package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

// inlineSeeds cover constructs that stress recovery.
var inlineSeeds = []string{
	"",
	".",
	"DEFINE sq == dup * .",
	"[1 2 3] [dup *] map .",
	"[1 2 .",
	"1 2 ] .",
	"{1 [2 } .",
	"v[1 foo] m[[1] 2] .",
	"a == == b .",
	"\"s\" == 1 .",
	"1 : 2 .",
	"$ echo hi\n1 .",
	"x $ y\n",
	"(* unterminated",
	"\"unterminated",
	"$\"a ${b ${c}} d\" .",
	"'\\999 '\\z .",
	"LIBRA HIDE x == 1 ; IN y == x ; END .",
	"[[[[[[[[[[",
	"]]]]]]]]]]",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".joy" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
