// Package validation 피델리티 카드 입력값 정규화와 검증 규칙.
//
// 요청 DTO, 엔티티 팩토리, 저장소 조회가 모두 이 패키지의 규칙을 사용합니다.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	domainerrors "github.com/Fjodor83/MyFidelityCard/internal/domain/errors"
	"github.com/go-playground/validator/v10"
)

// 필드 제약
const (
	MaxEmailLength    = 100
	MaxNameLength     = 50
	MaxAddressLength  = 100
	MaxLocalityLength = 100
	MaxPostalCode     = 10
	MaxProvince       = 2
	MaxCountry        = 2
	MaxSex            = 1
	MaxMobile         = 20

	MinAgeYears = 6
	MaxAgeYears = 100
)

var (
	emailPattern        = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	fidelityCodePattern = regexp.MustCompile(`^[A-Z0-9]{6,20}$`)
	storeCodePattern    = regexp.MustCompile(`^[A-Z0-9]{2,6}$`)
	phonePattern        = regexp.MustCompile(`^[\d\s\+\-\.\(\)]+$`)
)

// NormalizeEmail 공백 제거 후 소문자
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeCode 공백 제거 후 대문자 (피델리티 코드, 매장 코드 공통)
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeOptional 공백만 있는 선택 필드는 nil
func NormalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func IsEmail(email string) bool {
	email = NormalizeEmail(email)
	return len(email) <= MaxEmailLength && emailPattern.MatchString(email)
}

func IsFidelityCode(code string) bool {
	return fidelityCodePattern.MatchString(NormalizeCode(code))
}

func IsStoreCode(code string) bool {
	return storeCodePattern.MatchString(NormalizeCode(code))
}

func IsPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// BirthDateRange 오늘 기준 허용되는 생년월일 범위 [today-100y, today-6y]
func BirthDateRange(today time.Time) (min, max time.Time) {
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return day.AddDate(-MaxAgeYears, 0, 0), day.AddDate(-MinAgeYears, 0, 0)
}

// IsBirthDateInRange 생년월일이 범위(경계 포함) 안에 있는지.
// 시각과 타임존은 무시하고 달력 날짜끼리 비교합니다.
func IsBirthDateInRange(birthDate, today time.Time) bool {
	min, max := BirthDateRange(today)
	day := calendarDay(birthDate)
	return !day.Before(calendarDay(min)) && !day.After(calendarDay(max))
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// engine 커스텀 태그가 등록된 validator 인스턴스
func engine() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// 에러의 필드명은 json 태그 이름을 사용
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		mustRegister(v, "fidelity_email", func(fl validator.FieldLevel) bool {
			return IsEmail(fl.Field().String())
		})
		mustRegister(v, "fidelity_code", func(fl validator.FieldLevel) bool {
			return IsFidelityCode(fl.Field().String())
		})
		mustRegister(v, "store_code", func(fl validator.FieldLevel) bool {
			return IsStoreCode(fl.Field().String())
		})
		mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
			return IsPhone(fl.Field().String())
		})
		mustRegister(v, "birthdate", func(fl validator.FieldLevel) bool {
			switch d := fl.Field().Interface().(type) {
			case time.Time:
				return IsBirthDateInRange(d, time.Now())
			case *time.Time:
				return d != nil && IsBirthDateInRange(*d, time.Now())
			default:
				return false
			}
		})

		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Struct validate 태그가 붙은 구조체를 검증합니다.
// 실패 시 필드 목록을 가진 *errors.FidelityError 를 반환합니다.
func Struct(s interface{}) error {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.NewValidationError([]domainerrors.FieldError{
			{Field: "", Message: err.Error()},
		})
	}

	fields := make([]domainerrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return domainerrors.NewValidationError(fields)
}
