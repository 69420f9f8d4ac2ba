package domain

import "time"

// ProximityPayload is the envelope handed to a short-range transport (NFC
// tag write or BLE characteristic) for delivery to a nearby device.
type ProximityPayload struct {
	TxID      string    `json:"tx_id"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Amount    int64     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	Signature string    `json:"signature"`
}

// BluetoothDevice describes a nearby device found during a BLE scan.
type BluetoothDevice struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	RSSI int    `json:"rssi"`
}
