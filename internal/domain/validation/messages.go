package validation

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// 필드 표시 이름
var fieldLabels = map[string]string{
	"cdFidelity":  "Il codice fidelity",
	"store":       "Il codice negozio",
	"cognome":     "Il cognome",
	"nome":        "Il nome",
	"dataNascita": "La data di nascita",
	"email":       "L'email",
	"sesso":       "Il sesso",
	"indirizzo":   "L'indirizzo",
	"localita":    "La località",
	"cap":         "Il CAP",
	"provincia":   "La provincia",
	"nazione":     "La nazione",
	"cellulare":   "Il cellulare",
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// message 태그별 사용자 메시지
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Field() == "dataNascita" || fe.Field() == "email" {
			return fmt.Sprintf("%s è obbligatoria", label(fe.Field()))
		}
		return fmt.Sprintf("%s è obbligatorio", label(fe.Field()))
	case "max":
		return fmt.Sprintf("%s non può superare %s caratteri", label(fe.Field()), fe.Param())
	case "fidelity_email":
		return "Formato email non valido"
	case "fidelity_code":
		return "Il codice fidelity deve essere di 6-20 caratteri alfanumerici"
	case "store_code":
		return "Il codice negozio deve essere di 2-6 caratteri alfanumerici"
	case "phone":
		return "Formato numero di telefono non valido"
	case "birthdate":
		min, max := BirthDateRange(time.Now())
		return fmt.Sprintf("La data di nascita deve essere compresa tra %s e %s",
			min.Format("02/01/2006"), max.Format("02/01/2006"))
	default:
		return fmt.Sprintf("%s non è valido", label(fe.Field()))
	}
}
