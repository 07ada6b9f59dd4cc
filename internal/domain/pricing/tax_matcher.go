package pricing

import (
	"regexp"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Precios-api/internal/domain/entity"
)

// MatchTaxRules filtra las reglas de la clase tributaria por vigencia (en asOf) y jurisdicción.
// Un campo de la regla vacío no restringe; si la regla exige un campo que el destino no trae
// (o no hay destino), no aplica. El resultado no tiene orden definido.
func MatchTaxRules(rules []entity.TaxRule, asOf time.Time, shipTo *entity.ShipTo) []entity.TaxRule {
	var dest entity.ShipTo
	if shipTo != nil {
		dest = *shipTo
	}
	return lo.Filter(rules, func(r entity.TaxRule, _ int) bool {
		return r.EffectiveAt(asOf) &&
			matchField(r.Country, dest.Country) &&
			matchField(r.Region, dest.Region) &&
			matchPostal(r.PostalPattern, dest.Postal)
	})
}

func matchField(ruleValue, value string) bool {
	ruleValue = strings.TrimSpace(ruleValue)
	if ruleValue == "" {
		return true
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	return fold(ruleValue) == fold(value)
}

// matchPostal compara el código postal contra un glob con '*' (sin distinguir mayúsculas).
// Patrones mal formados no coinciden.
func matchPostal(pattern, postal string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return true
	}
	postal = strings.TrimSpace(postal)
	if postal == "" {
		return false
	}
	re, ok := compileGlob(pattern)
	if !ok {
		return false
	}
	return re.MatchString(fold(postal))
}

// Solo '*' es comodín; otros metacaracteres de glob se rechazan en lugar de tomarse literalmente.
const unsupportedGlobChars = "?[]\\"

func compileGlob(pattern string) (*regexp.Regexp, bool) {
	if strings.ContainsAny(pattern, unsupportedGlobChars) {
		return nil, false
	}
	parts := strings.Split(fold(pattern), "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	re, err := regexp.Compile("^" + strings.Join(parts, ".*") + "$")
	if err != nil {
		return nil, false
	}
	return re, true
}

// fold usa un Caser nuevo por llamada: cases.Caser no es seguro entre goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}
