package money

import (
	"fmt"
	"math/rand"
	"time"
)

const receiptAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ReceiptNumber generates a receipt identifier of the form SMK-YYMMDD-XXXX.
// The random suffix keeps numbers unique within a collection day; the
// payments table additionally enforces uniqueness.
func ReceiptNumber(now time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = receiptAlphabet[rand.Intn(len(receiptAlphabet))]
	}
	return fmt.Sprintf("SMK-%s-%s", now.Format("060102"), suffix)
}
