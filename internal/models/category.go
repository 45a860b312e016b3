package models

// CategoryRule allows a set of merchant category codes for a business.
type CategoryRule struct {
	BusinessID            string   `db:"business_id"`
	Name                  string   `db:"name"`
	MerchantCategoryCodes []string `db:"-"`
	ID                    int64    `db:"id"`
	Enabled               bool     `db:"enabled"`
}

// Allows reports whether the rule is enabled and lists mcc.
func (r CategoryRule) Allows(mcc string) bool {
	if !r.Enabled {
		return false
	}
	for _, code := range r.MerchantCategoryCodes {
		if code == mcc {
			return true
		}
	}
	return false
}

// AnyAllows reports whether any enabled rule in rules lists mcc.
func AnyAllows(rules []CategoryRule, mcc string) bool {
	for _, r := range rules {
		if r.Allows(mcc) {
			return true
		}
	}
	return false
}

// ValidMerchantCategoryCode reports whether code is four ASCII digits.
func ValidMerchantCategoryCode(code string) bool {
	if len(code) != 4 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
