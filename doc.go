/*
Package klhyph hyphenates words with the pattern method described by
Frank Liang (F.M.Liang http://www.tug.org/docs/liang/).

Language-specific pattern sources (the hyph-utf8 collection shipped with the
TeX distributions) are compiled offline into compact dictionaries: every
pattern is split into a letters-only key and a tally of inter-character
weights, identical tallies are stored once and shared by a small id, and the
keys go into a frozen double-array trie. At runtime a word is scored by
walking every substring through the trie and keeping the maximum weight per
gap; odd gaps inside the unbreakable margins become break opportunities.

Dictionaries come in two flavors. Standard dictionaries yield plain byte
positions. Extended dictionaries additionally carry spelling substitutions
for languages where hyphenation changes orthography (Catalan "paraŀlel",
Hungarian "asszonnyal").

Words containing soft hyphens (U+00AD) are never scored; the soft hyphens
are authoritative. Explicit per-word exceptions override pattern scoring.

The lookup path is Unicode-aware for BMP characters and supports non-ASCII
patterns such as German umlauts.

Further Reading

	https://nedbatchelder.com/code/modules/hyphenate.html   (Python implementation)
	http://www.mnn.ch/hyph/hyphenation2.html  / https://github.com/mnater/hyphenator
	https://github.com/hyphenation/tex-hyphen

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package klhyph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'klhyph'
func tracer() tracing.Trace {
	return tracing.Select("klhyph")
}
