package store

import "strconv"

// Valkeyキープレフィックス
const (
	KeyPrefixSubscriber = "sub:"           // 加入者（IMSI単位）
	KeyPrefixTMSIIndex  = "idx:tmsi:"      // TMSI → IMSI 一意インデックス
	KeyPrefixExtIndex   = "idx:ext:"       // 内線番号 → IMSI 一意インデックス
	KeyPrefixEquipment  = "equip:"         // 端末（IMEI単位）
	KeyPrefixEquipWatch = "ewatch:"        // 加入者×端末の観測記録
	KeyPrefixSMS        = "sms:"           // 蓄積SMS
	KeySMSUnsent        = "idx:sms:unsent" // 未送信SMS（スコア=ID）
)

// 採番用キー
const (
	KeySeqSubscriber = "seq:subscriber"
	KeySeqEquipment  = "seq:equipment"
	KeySeqSMS        = "seq:sms"
)

func subscriberKey(imsi string) string {
	return KeyPrefixSubscriber + imsi
}

func tmsiIndexKey(tmsi string) string {
	return KeyPrefixTMSIIndex + tmsi
}

func extIndexKey(ext string) string {
	return KeyPrefixExtIndex + ext
}

func equipmentKey(imei string) string {
	return KeyPrefixEquipment + imei
}

func equipWatchKey(subscriberID, equipmentID int64) string {
	return KeyPrefixEquipWatch + strconv.FormatInt(subscriberID, 10) + ":" + strconv.FormatInt(equipmentID, 10)
}

func smsKey(id int64) string {
	return KeyPrefixSMS + strconv.FormatInt(id, 10)
}
