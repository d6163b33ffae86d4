package validation

import (
	"testing"
	"time"

	domainerrors "github.com/Fjodor83/MyFidelityCard/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "mario.rossi@example.com", NormalizeEmail("  Mario.Rossi@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizeCode(" abc123 "))
	assert.Equal(t, "NE001", NormalizeCode("ne001"))
}

func TestNormalizeOptional(t *testing.T) {
	blank := "   "
	value := "  Via Roma 1 "

	assert.Nil(t, NormalizeOptional(nil))
	assert.Nil(t, NormalizeOptional(&blank))
	require.NotNil(t, NormalizeOptional(&value))
	assert.Equal(t, "Via Roma 1", *NormalizeOptional(&value))
}

func TestIsEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"mario@example.com", true},
		{"Mario.Rossi+promo@sub.example.it", true},
		{"mario@example", false},
		{"mario.example.com", false},
		{"mario@exa mple.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsEmail(tt.email))
		})
	}
}

func TestIsEmail_TooLong(t *testing.T) {
	local := make([]byte, MaxEmailLength)
	for i := range local {
		local[i] = 'a'
	}
	assert.False(t, IsEmail(string(local)+"@example.com"))
}

func TestIsFidelityCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"ABC123", true},
		{"abc123", true},
		{"ABCDEFGHIJ0123456789", true},
		{"ABC12", false},
		{"ABCDEFGHIJ01234567890", false},
		{"ABC-123", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsFidelityCode(tt.code))
		})
	}
}

func TestIsStoreCode(t *testing.T) {
	assert.True(t, IsStoreCode("NE001"))
	assert.True(t, IsStoreCode("ne"))
	assert.False(t, IsStoreCode("N"))
	assert.False(t, IsStoreCode("NE00123"))
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("+39 333 123.45-67"))
	assert.True(t, IsPhone("(02) 1234567"))
	assert.False(t, IsPhone("333abc"))
}

func TestBirthDateRange(t *testing.T) {
	today := time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)

	min, max := BirthDateRange(today)

	assert.Equal(t, time.Date(1924, 6, 15, 0, 0, 0, 0, time.UTC), min)
	assert.Equal(t, time.Date(2018, 6, 15, 0, 0, 0, 0, time.UTC), max)
}

func TestIsBirthDateInRange(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate time.Time
		valid     bool
	}{
		{"lower bound", time.Date(1924, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"upper bound", time.Date(2018, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"adult", time.Date(1985, 3, 2, 0, 0, 0, 0, time.UTC), true},
		{"too old", time.Date(1924, 6, 14, 0, 0, 0, 0, time.UTC), false},
		{"too young", time.Date(2018, 6, 16, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsBirthDateInRange(tt.birthDate, today))
		})
	}
}

func TestIsBirthDateInRange_IgnoresTimeZone(t *testing.T) {
	// 서버는 UTC 동쪽, 요청 날짜는 UTC 자정으로 파싱됨
	rome := time.FixedZone("CEST", 2*60*60)

	tests := []struct {
		name      string
		today     time.Time
		birthDate time.Time
		valid     bool
	}{
		{"upper bound east of UTC", time.Date(2024, 6, 15, 9, 0, 0, 0, rome), time.Date(2018, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"lower bound east of UTC", time.Date(2024, 6, 15, 9, 0, 0, 0, rome), time.Date(1924, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"early morning east of UTC", time.Date(2024, 6, 15, 0, 30, 0, 0, rome), time.Date(2018, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"one day too young", time.Date(2024, 6, 15, 9, 0, 0, 0, rome), time.Date(2018, 6, 16, 0, 0, 0, 0, time.UTC), false},
		{"one day too old", time.Date(2024, 6, 15, 23, 30, 0, 0, rome), time.Date(1924, 6, 14, 0, 0, 0, 0, time.UTC), false},
		{"birth date in local zone", time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC), time.Date(2018, 6, 15, 0, 0, 0, 0, rome), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsBirthDateInRange(tt.birthDate, tt.today))
		})
	}
}

type sampleInput struct {
	Email     string     `json:"email" validate:"required,fidelity_email"`
	Code      string     `json:"cdFidelity" validate:"required,fidelity_code"`
	Nome      string     `json:"nome" validate:"required,max=5"`
	BirthDate *time.Time `json:"dataNascita" validate:"required,birthdate"`
	Mobile    *string    `json:"cellulare" validate:"omitempty,phone"`
}

func TestStruct_Valid(t *testing.T) {
	birthDate := time.Now().AddDate(-30, 0, 0)

	err := Struct(sampleInput{
		Email:     "mario@example.com",
		Code:      "ABC123",
		Nome:      "Mario",
		BirthDate: &birthDate,
	})

	assert.NoError(t, err)
}

func TestStruct_FieldErrors(t *testing.T) {
	birthDate := time.Now().AddDate(-2, 0, 0)
	mobile := "abc"

	err := Struct(sampleInput{
		Email:     "not-an-email",
		Code:      "AB",
		Nome:      "Massimiliano",
		BirthDate: &birthDate,
		Mobile:    &mobile,
	})
	require.Error(t, err)

	var fe *domainerrors.FidelityError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, domainerrors.KindValidation, fe.Kind)
	assert.Equal(t, domainerrors.ReasonInvalidFields, fe.Reason)

	messages := map[string]string{}
	for _, f := range fe.Fields {
		messages[f.Field] = f.Message
	}
	assert.Equal(t, "Formato email non valido", messages["email"])
	assert.Equal(t, "Il codice fidelity deve essere di 6-20 caratteri alfanumerici", messages["cdFidelity"])
	assert.Equal(t, "Il nome non può superare 5 caratteri", messages["nome"])
	assert.Contains(t, messages["dataNascita"], "La data di nascita deve essere compresa tra")
	assert.Equal(t, "Formato numero di telefono non valido", messages["cellulare"])
}

func TestStruct_RequiredMessages(t *testing.T) {
	err := Struct(sampleInput{})
	require.Error(t, err)

	var fe *domainerrors.FidelityError
	require.ErrorAs(t, err, &fe)

	assert.Contains(t, fe.FieldMessages(), "L'email è obbligatoria")
	assert.Contains(t, fe.FieldMessages(), "Il codice fidelity è obbligatorio")
	assert.Contains(t, fe.FieldMessages(), "Il nome è obbligatorio")
	assert.Contains(t, fe.FieldMessages(), "La data di nascita è obbligatoria")
}
