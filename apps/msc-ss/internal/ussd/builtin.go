package ussd

import (
	"context"
	"fmt"

	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/gsm0480"
	"github.com/oyaguma3/msc-ss-poc/pkg/model"
)

// DefaultOwnNumberCode は自番号照会のUSSD文字列の既定値
const DefaultOwnNumberCode = "*1000#"

// BuiltinFunc は網内で完結するUSSDハンドラ
type BuiltinFunc func(ctx context.Context, sub *model.Subscriber, req *gsm0480.SSRequest) (string, error)

// BuiltinTable はUSSD文字列（完全一致）からハンドラへの対応表
type BuiltinTable map[string]BuiltinFunc

// NewBuiltinTable は自番号照会を登録した対応表を生成する
func NewBuiltinTable(ownNumberCode string) BuiltinTable {
	if ownNumberCode == "" {
		ownNumberCode = DefaultOwnNumberCode
	}
	return BuiltinTable{
		ownNumberCode: OwnNumber,
	}
}

// Lookup はテキストに完全一致するハンドラを返す
func (t BuiltinTable) Lookup(text string) (BuiltinFunc, bool) {
	fn, ok := t[text]
	return fn, ok
}

// OwnNumber は加入者の内線番号を返す
func OwnNumber(_ context.Context, sub *model.Subscriber, _ *gsm0480.SSRequest) (string, error) {
	return truncateText(fmt.Sprintf("Your extension is %s.", sub.Extension)), nil
}

// truncateText は応答テキストをMaxResponseTextLen文字に切り詰める
func truncateText(s string) string {
	n := 0
	for i := range s {
		if n == gsm0480.MaxResponseTextLen {
			return s[:i]
		}
		n++
	}
	return s
}
