package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailAddress(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{name: "simple address", raw: "taro@example.com", valid: true},
		{name: "subdomain", raw: "taro@mail.example.co.jp", valid: true},
		{name: "missing at sign", raw: "taro.example.com", valid: false},
		{name: "missing domain dot", raw: "taro@example", valid: false},
		{name: "contains whitespace", raw: "taro yamada@example.com", valid: false},
		{name: "empty", raw: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEmailAddress(tt.raw)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, EEMAIL, ErrorCode(err))
			}
		})
	}
}

func TestNewPhoneNumber(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		want       string
		hyphenated string
		wantCode   string
	}{
		{name: "11 digit mobile", raw: "09012345678", want: "09012345678", hyphenated: "090-1234-5678"},
		{name: "10 digit landline", raw: "0312345678", want: "0312345678", hyphenated: "03-1234-5678"},
		{name: "hyphens stripped", raw: "090-1234-5678", want: "09012345678", hyphenated: "090-1234-5678"},
		{name: "spaces stripped", raw: "090 1234 5678", want: "09012345678", hyphenated: "090-1234-5678"},
		{name: "must start with zero", raw: "19012345678", wantCode: EPHONE},
		{name: "too short", raw: "090123456", wantCode: EPHONE},
		{name: "too long", raw: "090123456789", wantCode: EPHONE},
		{name: "non-digit content", raw: "090-abcd-5678", wantCode: EPHONE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhoneNumber(tt.raw)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String(), "stored form is bare digits")
			assert.Equal(t, tt.hyphenated, p.Hyphenate(), "hyphenation is a rendering concern")
		})
	}
}

func TestValidateCustomerInfo(t *testing.T) {
	valid := UnvalidatedCustomerInfo{
		Name:  "山田太郎",
		Email: "taro@example.com",
		Phone: "090-1234-5678",
	}

	t.Run("valid info", func(t *testing.T) {
		info, err := ValidateCustomerInfo(valid)
		require.NoError(t, err)
		assert.Equal(t, "山田太郎", info.Name.String())
		assert.Equal(t, "taro@example.com", info.Email.String())
		assert.Equal(t, "09012345678", info.Phone.String())
	})

	t.Run("name validated before email", func(t *testing.T) {
		raw := valid
		raw.Name = "  "
		raw.Email = "broken"

		_, err := ValidateCustomerInfo(raw)
		assert.Equal(t, EEMPTYFIELD, ErrorCode(err))
	})

	t.Run("email validated before phone", func(t *testing.T) {
		raw := valid
		raw.Email = "broken"
		raw.Phone = "broken"

		_, err := ValidateCustomerInfo(raw)
		assert.Equal(t, EEMAIL, ErrorCode(err))
	})
}

func TestValidateUserProfile(t *testing.T) {
	t.Run("valid profile reuses shared normalization", func(t *testing.T) {
		profile, err := ValidateUserProfile(UnvalidatedUserProfile{
			Name:       " 山田太郎 ",
			PostalCode: "1234567",
			Phone:      "090-1234-5678",
		})
		require.NoError(t, err)
		assert.Equal(t, "山田太郎", profile.Name.String())
		assert.Equal(t, "123-4567", profile.PostalCode.String())
		assert.Equal(t, "09012345678", profile.Phone.String())
	})

	t.Run("postal code validated before phone", func(t *testing.T) {
		_, err := ValidateUserProfile(UnvalidatedUserProfile{
			Name:       "山田太郎",
			PostalCode: "bad",
			Phone:      "bad",
		})
		assert.Equal(t, EPOSTALCODE, ErrorCode(err))
	})
}
