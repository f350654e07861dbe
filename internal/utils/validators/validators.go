package validators

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	nonDigit = regexp.MustCompile(`\D`)
	cepRegex = regexp.MustCompile(`^\d{5}-?\d{3}$`)
)

var federativeUnits = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true, "DF": true,
	"ES": true, "GO": true, "MA": true, "MT": true, "MS": true, "MG": true, "PA": true,
	"PB": true, "PR": true, "PE": true, "PI": true, "RJ": true, "RN": true, "RS": true,
	"RO": true, "RR": true, "SC": true, "SP": true, "SE": true, "TO": true,
}

// Register installs the Brazilian document validators on validate and makes validation errors
// report the request name of a field rather than its Go name.
func Register(validate *validator.Validate) {
	validate.RegisterTagNameFunc(requestName)
	_ = validate.RegisterValidation("cpf", CPF)
	_ = validate.RegisterValidation("cnpj", CNPJ)
	_ = validate.RegisterValidation("uf", UF)
	_ = validate.RegisterValidation("cep", CEP)
}

func requestName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// CPF accepts an 11 digit taxpayer number with valid check digits.
func CPF(fl validator.FieldLevel) bool {
	return IsCPF(fl.Field().String())
}

// CNPJ accepts a company number, punctuated or not, with valid check digits.
func CNPJ(fl validator.FieldLevel) bool {
	return IsCNPJ(fl.Field().String())
}

// UF accepts a two letter federative unit code.
func UF(fl validator.FieldLevel) bool {
	return federativeUnits[strings.ToUpper(fl.Field().String())]
}

// CEP accepts a postal code as 8 digits with an optional hyphen.
func CEP(fl validator.FieldLevel) bool {
	return cepRegex.MatchString(fl.Field().String())
}

func IsCPF(s string) bool {
	if len(s) != 11 || nonDigit.MatchString(s) || allSame(s) {
		return false
	}
	return checkDigit(s[:9], 10) == s[9] && checkDigit(s[:10], 11) == s[10]
}

func IsCNPJ(s string) bool {
	d := nonDigit.ReplaceAllString(s, "")
	if len(d) != 14 || allSame(d) {
		return false
	}
	first := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	second := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	return weightedDigit(d[:12], first) == d[12] && weightedDigit(d[:13], second) == d[13]
}

func checkDigit(digits string, startWeight int) byte {
	sum := 0
	for i, ch := range digits {
		sum += int(ch-'0') * (startWeight - i)
	}
	return modDigit(sum)
}

func weightedDigit(digits string, weights []int) byte {
	sum := 0
	for i, ch := range digits {
		sum += int(ch-'0') * weights[i]
	}
	return modDigit(sum)
}

func modDigit(sum int) byte {
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + 11 - r)
}

func allSame(s string) bool {
	return strings.Count(s, s[:1]) == len(s)
}
