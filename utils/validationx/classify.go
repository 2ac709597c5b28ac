// File: classify.go
// Title: Named Predicates
// Description: Registry of the text predicates by name, used to run one or
//              all classifications on a single input.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-12

package validationx

import (
	"sort"
	"strings"

	tkerror "github.com/msto63/textkit/core/error"
	"github.com/msto63/textkit/core/errors"
	"github.com/msto63/textkit/utils/mapx"
)

// Predicate names accepted by Check
const (
	NameEmail              = "email"
	NameCreditCard         = "creditcard"
	NamePhone              = "phone"
	NameJSON               = "json"
	NameDate               = "date"
	NameFutureDate         = "futuredate"
	NameStandardDate       = "standarddate"
	NameNumber             = "number"
	NameWholeNumber        = "wholenumber"
	NameDecimal            = "decimal"
	NameBoolean            = "boolean"
	NameHTML               = "html"
	NameAlphaNumeric       = "alphanumeric"
	NameAlphaNumericStrict = "alphanumericstrict"
)

var predicates = map[string]func(string) bool{
	NameEmail:              IsValidEmail,
	NameCreditCard:         IsValidCreditCard,
	NameJSON:               IsValidJSON,
	NameDate:               IsValidDateString,
	NameFutureDate:         IsFutureDate,
	NameStandardDate:       IsValidStandardDate,
	NameNumber:             IsNumber,
	NameWholeNumber:        IsWholeNumber,
	NameDecimal:            IsDecimalNumber,
	NameBoolean:            IsBoolean,
	NameHTML:               IsHTML,
	NameAlphaNumeric:       IsAlphaNumeric,
	NameAlphaNumericStrict: IsAlphaNumericStrict,
}

// Names returns the predicate names in sorted order
func Names() []string {
	names := append(mapx.Keys(predicates), NamePhone)
	sort.Strings(names)
	return names
}

// Check runs the predicate called name on text. Phone options only affect
// the phone predicate. An unknown name returns an INVALID_INPUT error.
func Check(name, text string, opts ...PhoneOption) (bool, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == NamePhone {
		return IsValidPhone(text, opts...), nil
	}

	predicate, ok := predicates[key]
	if !ok {
		return false, errors.NewErrorBuilder(errors.ModuleValidationx).
			Operation("Check").
			Messagef("unknown predicate %q", name).
			Code(tkerror.CodeInvalidInput).
			Detail("name", name).
			Detail("available", strings.Join(Names(), ", ")).
			Build()
	}
	return predicate(text), nil
}

// Classify runs every predicate on text and returns the verdicts by name
func Classify(text string, opts ...PhoneOption) map[string]bool {
	result := make(map[string]bool, len(predicates)+1)
	for name, predicate := range predicates {
		result[name] = predicate(text)
	}
	result[NamePhone] = IsValidPhone(text, opts...)
	return result
}
