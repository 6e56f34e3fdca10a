// Package content defines the article schema for the travel guide, parses
// front-matter-backed markdown files, and validates every record before it is
// allowed into a build.
package content

import "time"

// DefaultAuthorName is applied when an article has no author block.
const DefaultAuthorName = "Editorial Team"

// DefaultCurrency is the currency code applied to price ranges that omit one.
const DefaultCurrency = "PHP"

// Category is the closed set of content sections.
type Category string

const (
	CategoryBeaches       Category = "beaches"
	CategoryWaterfalls    Category = "waterfalls"
	CategoryCaves         Category = "caves"
	CategoryDiving        Category = "diving"
	CategoryAttractions   Category = "attractions"
	CategoryFoodDrink     Category = "food-drink"
	CategoryAccommodation Category = "accommodation"
	CategoryActivities    Category = "activities"
	CategoryTravelTips    Category = "travel-tips"
	CategoryCulture       Category = "culture"
)

// Categories lists every valid category value.
func Categories() []Category {
	return []Category{
		CategoryBeaches, CategoryWaterfalls, CategoryCaves, CategoryDiving,
		CategoryAttractions, CategoryFoodDrink, CategoryAccommodation,
		CategoryActivities, CategoryTravelTips, CategoryCulture,
	}
}

// Difficulty is the closed set of activity difficulty ratings.
type Difficulty string

const (
	DifficultyEasy        Difficulty = "easy"
	DifficultyModerate    Difficulty = "moderate"
	DifficultyChallenging Difficulty = "challenging"
)

// Municipality is the closed set of island regions an article can point at.
// The island-wide and regional values cover content that is not tied to a
// single municipality.
type Municipality string

const (
	MunicipalitySiquijor          Municipality = "siquijor"
	MunicipalityLarena            Municipality = "larena"
	MunicipalityEnriqueVillanueva Municipality = "enrique-villanueva"
	MunicipalityMaria             Municipality = "maria"
	MunicipalityLazi              Municipality = "lazi"
	MunicipalitySanJuan           Municipality = "san-juan"
	MunicipalityIslandWide        Municipality = "island-wide"
	MunicipalityRegional          Municipality = "regional"
)

// SchemaType selects which schema.org entity a page emits.
type SchemaType string

const (
	SchemaArticle           SchemaType = "Article"
	SchemaTouristAttraction SchemaType = "TouristAttraction"
	SchemaHowTo             SchemaType = "HowTo"
	SchemaFAQPage           SchemaType = "FAQPage"
)

// Coordinates is a GPS point.
type Coordinates struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lng float64 `yaml:"lng" json:"lng"`
}

// Location describes where on the island an article's subject sits.
type Location struct {
	Name         string       `yaml:"name" json:"name"`
	Municipality string       `yaml:"municipality" json:"municipality"`
	Coordinates  *Coordinates `yaml:"coordinates,omitempty" json:"coordinates,omitempty"`
	MapURL       string       `yaml:"mapUrl,omitempty" json:"mapUrl,omitempty"`
}

// Image is a hero or gallery image. Alt text is mandatory.
type Image struct {
	Src     string `yaml:"src" json:"src"`
	Alt     string `yaml:"alt" json:"alt"`
	Caption string `yaml:"caption,omitempty" json:"caption,omitempty"`
	Credit  string `yaml:"credit,omitempty" json:"credit,omitempty"`
}

// FAQ is a question/answer pair rendered on the page and in FAQPage markup.
type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// PriceRange is an expected cost band in a single currency.
type PriceRange struct {
	Min      float64 `yaml:"min" json:"min"`
	Max      float64 `yaml:"max" json:"max"`
	Currency string  `yaml:"currency,omitempty" json:"currency,omitempty"`
}

// Author identifies who wrote an article.
type Author struct {
	Name   string `yaml:"name" json:"name"`
	Avatar string `yaml:"avatar,omitempty" json:"avatar,omitempty"`
	Bio    string `yaml:"bio,omitempty" json:"bio,omitempty"`
}

// FrontMatter is the raw decode target for an article's YAML block. Fields
// stay loosely typed (strings for dates and enums) so validation can report
// exactly what the author wrote; Normalize turns it into an Article.
type FrontMatter struct {
	Title           string      `yaml:"title" json:"title"`
	Description     string      `yaml:"description" json:"description"`
	Keywords        []string    `yaml:"keywords" json:"keywords"`
	Category        string      `yaml:"category" json:"category"`
	Tags            []string    `yaml:"tags" json:"tags"`
	PublishDate     string      `yaml:"publishDate" json:"publishDate"`
	UpdatedDate     string      `yaml:"updatedDate,omitempty" json:"updatedDate"`
	HeroImage       *Image      `yaml:"heroImage" json:"heroImage"`
	SchemaType      string      `yaml:"schemaType,omitempty" json:"schemaType"`
	Draft           bool        `yaml:"draft,omitempty" json:"draft"`
	Featured        bool        `yaml:"featured,omitempty" json:"featured"`
	Author          *Author     `yaml:"author,omitempty" json:"author"`
	OGImage         string      `yaml:"ogImage,omitempty" json:"ogImage"`
	OGType          string      `yaml:"ogType,omitempty" json:"ogType"`
	Images          []Image     `yaml:"images,omitempty" json:"images"`
	Location        *Location   `yaml:"location,omitempty" json:"location"`
	Difficulty      string      `yaml:"difficulty,omitempty" json:"difficulty"`
	Duration        string      `yaml:"duration,omitempty" json:"duration"`
	BestTime        string      `yaml:"bestTime,omitempty" json:"bestTime"`
	OpeningHours    string      `yaml:"openingHours,omitempty" json:"openingHours"`
	PriceRange      *PriceRange `yaml:"priceRange,omitempty" json:"priceRange"`
	Requirements    []string    `yaml:"requirements,omitempty" json:"requirements"`
	Gear            []string    `yaml:"gear,omitempty" json:"gear"`
	FAQs            []FAQ       `yaml:"faqs,omitempty" json:"faqs"`
	RelatedArticles []string    `yaml:"relatedArticles,omitempty" json:"relatedArticles"`
}

// Article is the fully typed, default-filled record every downstream consumer
// works with. It is produced once per build by Validate + Normalize and never
// mutated afterwards.
type Article struct {
	Slug         string
	Title        string
	Description  string
	Keywords     []string
	Category     Category
	Tags         []string
	PublishDate  time.Time
	UpdatedDate  time.Time // zero when the article was never updated
	HeroImage    Image
	SchemaType   SchemaType
	Draft        bool
	Featured     bool
	Author       Author
	OGImage      string
	OGType       string
	Images       []Image
	Location     *Location
	Difficulty   Difficulty
	Duration     string
	BestTime     string
	OpeningHours string
	PriceRange   *PriceRange
	Requirements []string
	Gear         []string
	FAQs         []FAQ
	Related      []string
	Body         string
}

// LastModified returns the updated date when set, otherwise the publish date.
func (a Article) LastModified() time.Time {
	if !a.UpdatedDate.IsZero() {
		return a.UpdatedDate
	}
	return a.PublishDate
}
