package entity

// Store 매장 정보
type Store struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}
