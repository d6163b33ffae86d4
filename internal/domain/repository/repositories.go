package repository

// Repositories 모든 레포지토리 인터페이스의 컬렉션
type Repositories struct {
	Fidelity FidelityRepository
	Token    TokenRepository
	Mail     MailRepository
	Card     CardRenderer
	Store    StoreRepository
	Events   EventPublisher
}

// NewRepositories 모든 레포지토리를 포함하는 컬렉션 생성
func NewRepositories(
	fidelityRepo FidelityRepository,
	tokenRepo TokenRepository,
	mailRepo MailRepository,
	cardRenderer CardRenderer,
	storeRepo StoreRepository,
	events EventPublisher,
) *Repositories {
	return &Repositories{
		Fidelity: fidelityRepo,
		Token:    tokenRepo,
		Mail:     mailRepo,
		Card:     cardRenderer,
		Store:    storeRepo,
		Events:   events,
	}
}
