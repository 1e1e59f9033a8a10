// Package ussd は移動機発USSD要求の分類、処理先の選択、コネクション解放の制御を提供する。
package ussd

import "github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/gsm0480"

// Decision は分類結果を表す
type Decision int

// 分類結果
const (
	// DecisionDispatch はハンドラへ振り分ける
	DecisionDispatch Decision = iota
	// DecisionReject はRejectを返して解放する
	DecisionReject
	// DecisionReleaseComplete は応答せずに解放する
	DecisionReleaseComplete
)

// String は分類結果の名前を返す
func (d Decision) String() string {
	switch d {
	case DecisionDispatch:
		return "dispatch"
	case DecisionReject:
		return "reject"
	case DecisionReleaseComplete:
		return "release_complete"
	default:
		return "unknown"
	}
}

// Classify は復号済みの要求を分類する。
// テキストが空か番兵値の場合は文字列照合より先に判定し、ハンドラへは渡さない。
func Classify(req *gsm0480.SSRequest) Decision {
	if !req.HasText() {
		if req.SSCode > 0 {
			return DecisionReject
		}
		return DecisionReleaseComplete
	}
	return DecisionDispatch
}
