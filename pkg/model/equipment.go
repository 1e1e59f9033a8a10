package model

// Equipment は端末（IMEI単位）を表す。
// Valkeyキー: equip:{IMEI}
type Equipment struct {
	ID      int64  `json:"id" redis:"id"`
	IMEI    string `json:"imei" redis:"imei"`
	Created int64  `json:"created" redis:"created"`
}

// EquipmentWatch は加入者と端末の組み合わせの観測記録を表す。
// Valkeyキー: ewatch:{SubscriberID}:{EquipmentID}
// Created は初回観測、Updated は最終観測の時刻（Unix秒）。
type EquipmentWatch struct {
	SubscriberID int64 `json:"subscriber_id" redis:"subscriber_id"`
	EquipmentID  int64 `json:"equipment_id" redis:"equipment_id"`
	Created      int64 `json:"created" redis:"created"`
	Updated      int64 `json:"updated" redis:"updated"`
}
