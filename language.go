package klhyph

// Language tags a hyphenation dictionary. Values are the codes used by the
// hyph-utf8 pattern collection, i.e. the <code> part of "hyph-<code>.pat.txt".
type Language string

// Languages with hyphenation patterns in the hyph-utf8 collection.
const (
	Afrikaans             Language = "af"
	Armenian              Language = "hy"
	Assamese              Language = "as"
	Basque                Language = "eu"
	Belarusian            Language = "be"
	Bengali               Language = "bn"
	Bulgarian             Language = "bg"
	Catalan               Language = "ca"
	Chinese               Language = "zh-latn-pinyin"
	Coptic                Language = "cop"
	Croatian              Language = "hr"
	Czech                 Language = "cs"
	Danish                Language = "da"
	Dutch                 Language = "nl"
	EnglishGB             Language = "en-gb"
	EnglishUS             Language = "en-us"
	Esperanto             Language = "eo"
	Estonian              Language = "et"
	Ethiopic              Language = "mul-ethi"
	Finnish               Language = "fi"
	French                Language = "fr"
	Friulan               Language = "fur"
	Galician              Language = "gl"
	Georgian              Language = "ka"
	German1901            Language = "de-1901"
	German1996            Language = "de-1996"
	GermanSwiss           Language = "de-ch-1901"
	GreekAncient          Language = "grc"
	GreekMono             Language = "el-monoton"
	GreekPoly             Language = "el-polyton"
	Gujarati              Language = "gu"
	Hindi                 Language = "hi"
	Hungarian             Language = "hu"
	Icelandic             Language = "is"
	Indonesian            Language = "id"
	Interlingua           Language = "ia"
	Irish                 Language = "ga"
	Italian               Language = "it"
	Kannada               Language = "kn"
	Kurmanji              Language = "kmr"
	Latin                 Language = "la"
	LatinClassic          Language = "la-x-classic"
	LatinLiturgical       Language = "la-x-liturgic"
	Latvian               Language = "lv"
	Lithuanian            Language = "lt"
	Macedonian            Language = "mk"
	Malayalam             Language = "ml"
	Marathi               Language = "mr"
	Mongolian             Language = "mn-cyrl"
	NorwegianBokmal       Language = "nb"
	NorwegianNynorsk      Language = "nn"
	Occitan               Language = "oc"
	Oriya                 Language = "or"
	Pali                  Language = "pi"
	Panjabi               Language = "pa"
	Piedmontese           Language = "pms"
	Polish                Language = "pl"
	Portuguese            Language = "pt"
	Romanian              Language = "ro"
	Romansh               Language = "rm"
	Russian               Language = "ru"
	Sanskrit              Language = "sa"
	SerbianCyrillic       Language = "sr-cyrl"
	SerbocroatianCyrillic Language = "sh-cyrl"
	SerbocroatianLatin    Language = "sh-latn"
	SlavonicChurch        Language = "cu"
	Slovak                Language = "sk"
	Slovenian             Language = "sl"
	Spanish               Language = "es"
	Swedish               Language = "sv"
	Tamil                 Language = "ta"
	Telugu                Language = "te"
	Thai                  Language = "th"
	Turkish               Language = "tr"
	Turkmen               Language = "tk"
	Ukrainian             Language = "uk"
	Uppersorbian          Language = "hsb"
	Welsh                 Language = "cy"
)

// Code returns the hyph-utf8 code of the language.
func (l Language) Code() string { return string(l) }

// Minima carries the number of characters at the start and end of a word
// where no break may occur.
type Minima struct {
	Left  int
	Right int
}

// minimaByLanguage lists per-language unbreakable margins, following the
// lefthyphenmin/righthyphenmin values of the TeX pattern files. Languages
// not listed use defaultMinima.
var minimaByLanguage = map[Language]Minima{
	EnglishGB:       {2, 3},
	EnglishUS:       {2, 3},
	French:          {2, 3},
	Assamese:        {1, 1},
	Bengali:         {1, 1},
	Gujarati:        {1, 1},
	Hindi:           {1, 1},
	Kannada:         {1, 1},
	Malayalam:       {1, 1},
	Marathi:         {1, 1},
	Oriya:           {1, 1},
	Panjabi:         {1, 1},
	Tamil:           {1, 1},
	Telugu:          {1, 1},
	Thai:            {2, 3},
	Ethiopic:        {1, 1},
	Latin:           {2, 2},
	LatinClassic:    {2, 2},
	LatinLiturgical: {2, 2},
	Dutch:           {2, 2},
	German1901:      {2, 2},
	German1996:      {2, 2},
	GermanSwiss:     {2, 2},
	Hungarian:       {2, 2},
	Catalan:         {2, 2},
	Turkish:         {2, 2},
	Welsh:           {2, 3},
}

var defaultMinima = Minima{2, 2}

// MinimaFor returns the unbreakable margins for a language.
func MinimaFor(l Language) Minima {
	if m, ok := minimaByLanguage[l]; ok {
		return m
	}
	return defaultMinima
}
