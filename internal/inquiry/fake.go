package inquiry

import (
	"net/http"

	"github.com/google/uuid"
)

func fakeReceipt(kind Kind) Receipt {
	return Receipt{
		ID:       uuid.NewString(),
		Kind:     kind,
		Status:   http.StatusOK,
		Response: map[string]any{"success": true},
		Fake:     true,
	}
}
