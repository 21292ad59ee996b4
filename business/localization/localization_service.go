package localization

import (
	"sort"
	"strings"
	"time"

	"dabbaMarket/domain"
)

// localizationService serves language lists, translations, and regional
// content from the static in-memory tables. All state is read-only after
// construction, so the service is safe for concurrent use.
type localizationService struct{}

func NewLocalizationService() *localizationService {
	return &localizationService{}
}

// GetLanguages lists the supported languages with display names.
func (s *localizationService) GetLanguages() []domain.Language {
	languages := make([]domain.Language, 0, len(supportedLanguages))
	for _, code := range supportedLanguages {
		name, ok := languageNames[code]
		if !ok {
			name = code
		}
		languages = append(languages, domain.Language{
			Code:  code,
			Name:  name,
			IsRTL: code == "ur",
		})
	}
	return languages
}

// Translate resolves a key in the given language, substituting {placeholder}
// arguments. Unsupported languages fall back to English; unknown keys fall
// back to the key itself so a missing translation never blanks the UI.
func (s *localizationService) Translate(key, language string, args map[string]string) string {
	table, ok := translations[language]
	if !ok {
		table = translations["en"]
	}

	translation, ok := table[key]
	if !ok {
		if english, found := translations["en"][key]; found {
			translation = english
		} else {
			translation = key
		}
	}

	for name, value := range args {
		translation = strings.ReplaceAll(translation, "{"+name+"}", value)
	}
	return translation
}

// GetRegionInfo resolves a city to its region. Unknown cities resolve to
// the default region rather than erroring.
func (s *localizationService) GetRegionInfo(city string) domain.Region {
	key, ok := cityToRegion[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		key = defaultRegionKey
	}
	region, ok := regions[key]
	if !ok {
		region = regions[defaultRegionKey]
	}
	return region
}

// GetFestiveSpecial reports the festival running in the given region's
// language this month, if any.
func (s *localizationService) GetFestiveSpecial(regionLanguage string, now time.Time) *domain.FestiveSpecial {
	month := int(now.Month())
	for _, region := range regions {
		if region.Language != regionLanguage {
			continue
		}
		for _, festival := range region.Festivals {
			if festival.Month == month {
				return &domain.FestiveSpecial{
					Name:           festival.Name,
					IsOngoing:      true,
					SpecialMessage: "Special " + festival.Name + " dishes available!",
				}
			}
		}
	}
	return nil
}

// GetLocalRecommendations suggests up to five regional specialties for the
// city and time of day. Independent of the personalized engine.
func (s *localizationService) GetLocalRecommendations(city, timeOfDay string) []domain.LocalDish {
	region := s.GetRegionInfo(city)

	dishes := region.LocalDishes
	if len(dishes) > 5 {
		dishes = dishes[:5]
	}

	recommendations := make([]domain.LocalDish, 0, len(dishes))
	for _, dish := range dishes {
		recommendations = append(recommendations, domain.LocalDish{
			Name:        dish,
			Language:    region.Language,
			Region:      region.Capital,
			Description: "Popular " + region.Capital + " " + timeOfDay + " dish",
		})
	}
	return recommendations
}

// GetCities lists the supported cities, sorted for stable output.
func (s *localizationService) GetCities() []string {
	cities := make([]string, 0, len(cityToRegion))
	for city := range cityToRegion {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

// GetAreas lists the well-known areas of the city's region.
func (s *localizationService) GetAreas(city string) []string {
	return s.GetRegionInfo(city).FamousAreas
}

// RegionalNote builds the localized note attached to each personalized
// recommendation.
func (s *localizationService) RegionalNote(city, language string) string {
	region := s.GetRegionInfo(city)
	return s.Translate(KeyRegionalSpecial, language, map[string]string{"region": region.Capital})
}
