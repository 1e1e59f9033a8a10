package gateway

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_gateway.go -package=mocks

import "context"

// Relay はUSSDゲートウェイとの1往復の交換を定義する
type Relay interface {
	// Relay はエンベロープを送信し、応答テキストを返す
	Relay(ctx context.Context, env *Envelope) (string, error)
}
