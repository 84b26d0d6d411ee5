// Command klbuild compiles hyph-utf8 pattern sources into binary
// dictionary artifacts, one per language per dictionary kind.
//
// Sources are expected as hyph-<code>.pat.txt / .hyp.txt / .ext.txt below
// the source directory; artifacts land in the output directory as
// <code>.standard.dict / <code>.extended.dict.
//
// The language lists come from a YAML manifest:
//
//	normalization: nfc
//	standard: [en-us, de-1996]
//	extended: [hu, ca]
//
// Directories resolve from flags first, then the environment
// (KLBUILD_SOURCE, KLBUILD_OUT), with an optional .env file. The build is
// batch and single-threaded; the first error aborts the invocation.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/npillmayer/klhyph"
	"github.com/npillmayer/klhyph/patfile"
)

var (
	srcDir   = flag.String("src", "", "Pattern source directory (default $KLBUILD_SOURCE)")
	outDir   = flag.String("out", "", "Artifact output directory (default $KLBUILD_OUT, else the source directory)")
	manifest = flag.String("manifest", "klbuild.yaml", "Build manifest")
	backend  = flag.String("backend", "dat", "Pattern index backend: dat or trie")
)

type buildManifest struct {
	Normalization string   `yaml:"normalization"`
	Standard      []string `yaml:"standard"`
	Extended      []string `yaml:"extended"`
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: klbuild [flags]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "klbuild: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// a missing .env file is fine; explicit configuration wins anyway
	_ = godotenv.Load()
	src := firstOf(*srcDir, os.Getenv("KLBUILD_SOURCE"))
	if src == "" {
		return &klhyph.BuildError{Kind: klhyph.KindEnv,
			Err: fmt.Errorf("no source directory: set -src or KLBUILD_SOURCE")}
	}
	out := firstOf(*outDir, os.Getenv("KLBUILD_OUT"), src)
	if err := os.MkdirAll(out, 0o755); err != nil {
		return &klhyph.BuildError{Kind: klhyph.KindIO, Err: err}
	}

	m, err := readManifest(*manifest)
	if err != nil {
		return err
	}
	normalize := klhyph.NormalizerFor(m.Normalization)
	opts := []klhyph.Option{klhyph.WithBackend(indexBackend(*backend))}

	fmt.Fprintln(os.Stderr, "Building `Standard` dictionaries:")
	for _, code := range m.Standard {
		lang := klhyph.Language(code)
		fmt.Fprintf(os.Stderr, "  %s\n", lang.Code())
		if err := buildStandard(src, out, lang, normalize, opts); err != nil {
			return fmt.Errorf("%s: %w", lang.Code(), err)
		}
	}
	fmt.Fprintln(os.Stderr, "Building `Extended` dictionaries:")
	for _, code := range m.Extended {
		lang := klhyph.Language(code)
		fmt.Fprintf(os.Stderr, "  %s\n", lang.Code())
		if err := buildExtended(src, out, lang, normalize, opts); err != nil {
			return fmt.Errorf("%s: %w", lang.Code(), err)
		}
	}
	return nil
}

func buildStandard(src, out string, lang klhyph.Language, normalize klhyph.Normalizer, opts []klhyph.Option) error {
	pat, err := os.Open(sourcePath(src, lang, "pat"))
	if err != nil {
		return &klhyph.BuildError{Kind: klhyph.KindIO, Err: err}
	}
	defer pat.Close()
	dict, err := klhyph.LoadStandard(lang, patfile.NewPatternReader(pat, normalize), opts...)
	if err != nil {
		return err
	}
	hyp, err := os.Open(sourcePath(src, lang, "hyp"))
	if err != nil {
		return &klhyph.BuildError{Kind: klhyph.KindIO, Err: err}
	}
	defer hyp.Close()
	if err := dict.LoadExceptions(patfile.NewExceptionReader(hyp, normalize)); err != nil {
		return err
	}
	return writeArtifact(out, klhyph.ArtifactName(lang, false), func(f *os.File) error {
		return klhyph.WriteStandard(f, dict)
	})
}

func buildExtended(src, out string, lang klhyph.Language, normalize klhyph.Normalizer, opts []klhyph.Option) error {
	ext, err := os.Open(sourcePath(src, lang, "ext"))
	if err != nil {
		return &klhyph.BuildError{Kind: klhyph.KindIO, Err: err}
	}
	defer ext.Close()
	dict, err := klhyph.LoadExtended(lang, patfile.NewExtReader(ext, normalize), opts...)
	if err != nil {
		return err
	}
	return writeArtifact(out, klhyph.ArtifactName(lang, true), func(f *os.File) error {
		return klhyph.WriteExtended(f, dict)
	})
}

func writeArtifact(dir, name string, encode func(*os.File) error) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return &klhyph.BuildError{Kind: klhyph.KindIO, Err: err}
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &klhyph.BuildError{Kind: klhyph.KindIO, Err: err}
	}
	return nil
}

func readManifest(path string) (*buildManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &klhyph.BuildError{Kind: klhyph.KindEnv, Err: err}
	}
	var m buildManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &klhyph.BuildError{Kind: klhyph.KindEnv, Err: err}
	}
	if len(m.Standard) == 0 && len(m.Extended) == 0 {
		return nil, &klhyph.BuildError{Kind: klhyph.KindEnv,
			Err: fmt.Errorf("manifest %s lists no languages", path)}
	}
	return &m, nil
}

func sourcePath(dir string, lang klhyph.Language, suffix string) string {
	return filepath.Join(dir, fmt.Sprintf("hyph-%s.%s.txt", lang.Code(), suffix))
}

func indexBackend(name string) klhyph.IndexBackend {
	if strings.EqualFold(name, "trie") {
		return klhyph.IndexSparseTrie
	}
	return klhyph.IndexDoubleArray
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
