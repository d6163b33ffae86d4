package entity

// Card 카드 이미지에 그려지는 정보
type Card struct {
	Code      string
	FullName  string
	StoreName string
	Points    int
}
