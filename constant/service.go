package constant

// RootURL is the fixed service root used for mirror discovery.
const RootURL = "http://thetvdb.com"

// DefaultLanguage is the language abbreviation used when none is given.
const DefaultLanguage = "en"

// Bundle document names. The series document is named after its language.
const (
	ActorsFile  = "actors.xml"
	BannersFile = "banners.xml"
)

// Download artifacts written below the download directory.
const (
	BundleFile       = "loaded.zip"
	ExtractionFolder = "extraction"
)

// SeriesFile returns the name of the series document for the given language.
func SeriesFile(language string) string {
	return language + ".xml"
}
