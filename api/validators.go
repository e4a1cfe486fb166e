package api

import (
	"reflect"
	"strings"

	"github.com/TJurijs/5esrd-api/rules"
	"github.com/go-playground/validator/v10"
)

const (
	challengeRatingTag = "cr"
	rarityTag          = "rarity"
)

// RegisterValidators adds the API's custom binding tags and reports field names by their JSON tag.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(challengeRatingTag, validChallengeRating); err != nil {
		return err
	}

	return v.RegisterValidation(rarityTag, validRarity)
}

func validChallengeRating(fl validator.FieldLevel) bool {
	return rules.IsChallengeRating(fl.Field().String())
}

func validRarity(fl validator.FieldLevel) bool {
	return rules.IsRarity(fl.Field().String())
}
