package content

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const dateLayout = "2006-01-02"

var (
	validCategories = []interface{}{
		"beaches", "waterfalls", "caves", "diving", "attractions",
		"food-drink", "accommodation", "activities", "travel-tips", "culture",
	}
	validDifficulties = []interface{}{"easy", "moderate", "challenging"}
	validSchemaTypes  = []interface{}{"Article", "TouristAttraction", "HowTo", "FAQPage"}
	validMunicipalities = []interface{}{
		"siquijor", "larena", "enrique-villanueva", "maria", "lazi",
		"san-juan", "island-wide", "regional",
	}
)

// Validate checks every front matter field against the article schema. It
// returns a validation.Errors map keyed by field path on failure; the caller
// must treat any error as fatal to the build.
func Validate(fm *FrontMatter) error {
	return validation.ValidateStruct(fm,
		validation.Field(&fm.Title,
			validation.Required.Error("title_required"),
			validation.RuneLength(1, 80).Error("title_too_long"),
		),
		validation.Field(&fm.Description,
			validation.Required.Error("description_required"),
			validation.RuneLength(1, 200).Error("description_too_long"),
		),
		validation.Field(&fm.Keywords,
			validation.Required.Error("keywords_required"),
			validation.Length(3, 15).Error("keywords_count_out_of_range"),
		),
		validation.Field(&fm.Category,
			validation.Required.Error("category_required"),
			validation.In(validCategories...).Error("invalid_category"),
		),
		validation.Field(&fm.Tags,
			validation.Required.Error("tags_required"),
			validation.Length(1, 10).Error("tags_count_out_of_range"),
		),
		validation.Field(&fm.PublishDate,
			validation.Required.Error("publish_date_required"),
			validation.Date(dateLayout).Error("invalid_publish_date"),
		),
		validation.Field(&fm.UpdatedDate,
			validation.Date(dateLayout).Error("invalid_updated_date"),
		),
		validation.Field(&fm.HeroImage,
			validation.Required.Error("hero_image_required"),
			validation.By(imageRule),
		),
		validation.Field(&fm.SchemaType,
			validation.In(validSchemaTypes...).Error("invalid_schema_type"),
		),
		validation.Field(&fm.Author, validation.By(authorRule)),
		validation.Field(&fm.Images, validation.Each(validation.By(imageRule))),
		validation.Field(&fm.Location, validation.By(locationRule)),
		validation.Field(&fm.Difficulty,
			validation.In(validDifficulties...).Error("invalid_difficulty"),
		),
		validation.Field(&fm.PriceRange, validation.By(priceRangeRule)),
		validation.Field(&fm.FAQs, validation.Each(validation.By(faqRule))),
	)
}

// imageRule accepts Image or *Image values and requires src and alt. Alt text
// is mandatory so every published image meets the accessibility contract.
func imageRule(value interface{}) error {
	var img Image
	switch v := value.(type) {
	case *Image:
		if v == nil {
			return nil
		}
		img = *v
	case Image:
		img = v
	default:
		return nil
	}
	return validation.ValidateStruct(&img,
		validation.Field(&img.Src, validation.Required.Error("image_src_required")),
		validation.Field(&img.Alt, validation.Required.Error("image_alt_required")),
	)
}

func authorRule(value interface{}) error {
	author, _ := value.(*Author)
	if author == nil {
		return nil
	}
	return validation.ValidateStruct(author,
		validation.Field(&author.Name, validation.Required.Error("author_name_required")),
	)
}

func locationRule(value interface{}) error {
	loc, _ := value.(*Location)
	if loc == nil {
		return nil
	}
	return validation.ValidateStruct(loc,
		validation.Field(&loc.Name, validation.Required.Error("location_name_required")),
		validation.Field(&loc.Municipality,
			validation.Required.Error("municipality_required"),
			validation.In(validMunicipalities...).Error("invalid_municipality"),
		),
		validation.Field(&loc.Coordinates, validation.By(coordinatesRule)),
	)
}

func coordinatesRule(value interface{}) error {
	coords, _ := value.(*Coordinates)
	if coords == nil {
		return nil
	}
	return validation.ValidateStruct(coords,
		validation.Field(&coords.Lat,
			validation.Min(-90.0).Error("latitude_out_of_range"),
			validation.Max(90.0).Error("latitude_out_of_range"),
		),
		validation.Field(&coords.Lng,
			validation.Min(-180.0).Error("longitude_out_of_range"),
			validation.Max(180.0).Error("longitude_out_of_range"),
		),
	)
}

func priceRangeRule(value interface{}) error {
	pr, _ := value.(*PriceRange)
	if pr == nil {
		return nil
	}
	return validation.ValidateStruct(pr,
		validation.Field(&pr.Min, validation.Min(0.0).Error("price_min_negative")),
		validation.Field(&pr.Max, validation.Min(0.0).Error("price_max_negative")),
		validation.Field(&pr.Currency,
			validation.RuneLength(3, 3).Error("invalid_currency_code"),
		),
	)
}

func faqRule(value interface{}) error {
	faq, ok := value.(FAQ)
	if !ok {
		return nil
	}
	return validation.ValidateStruct(&faq,
		validation.Field(&faq.Question, validation.Required.Error("faq_question_required")),
		validation.Field(&faq.Answer, validation.Required.Error("faq_answer_required")),
	)
}

// Normalize turns validated front matter into a fully-populated Article:
// dates parsed, defaults applied (author, schema type, currency, draft and
// featured flags already carry their zero-value defaults). It must only be
// called after Validate has passed.
func Normalize(slug string, fm FrontMatter, body string) (Article, error) {
	publish, err := time.Parse(dateLayout, fm.PublishDate)
	if err != nil {
		return Article{}, fmt.Errorf("content: parse publish date: %w", err)
	}

	var updated time.Time
	if fm.UpdatedDate != "" {
		updated, err = time.Parse(dateLayout, fm.UpdatedDate)
		if err != nil {
			return Article{}, fmt.Errorf("content: parse updated date: %w", err)
		}
	}

	schemaType := SchemaType(fm.SchemaType)
	if schemaType == "" {
		schemaType = SchemaArticle
	}

	author := Author{Name: DefaultAuthorName}
	if fm.Author != nil {
		author = *fm.Author
	}

	priceRange := fm.PriceRange
	if priceRange != nil && priceRange.Currency == "" {
		pr := *priceRange
		pr.Currency = DefaultCurrency
		priceRange = &pr
	}

	var hero Image
	if fm.HeroImage != nil {
		hero = *fm.HeroImage
	}

	return Article{
		Slug:         slug,
		Title:        fm.Title,
		Description:  fm.Description,
		Keywords:     fm.Keywords,
		Category:     Category(fm.Category),
		Tags:         fm.Tags,
		PublishDate:  publish,
		UpdatedDate:  updated,
		HeroImage:    hero,
		SchemaType:   schemaType,
		Draft:        fm.Draft,
		Featured:     fm.Featured,
		Author:       author,
		OGImage:      fm.OGImage,
		OGType:       fm.OGType,
		Images:       fm.Images,
		Location:     fm.Location,
		Difficulty:   Difficulty(fm.Difficulty),
		Duration:     fm.Duration,
		BestTime:     fm.BestTime,
		OpeningHours: fm.OpeningHours,
		PriceRange:   priceRange,
		Requirements: fm.Requirements,
		Gear:         fm.Gear,
		FAQs:         fm.FAQs,
		Related:      fm.RelatedArticles,
		Body:         body,
	}, nil
}
