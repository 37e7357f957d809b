package models

import (
	"errors"
	"testing"
)

func TestTableRequest_NotificationText(t *testing.T) {
	tests := []struct {
		name        string
		requestType string
		message     string
		want        string
	}{
		{"call waiter", RequestTypeCallWaiter, "", "🔔 Masa 3 - Garson çağırıldı"},
		{"call waiter ignores message", RequestTypeCallWaiter, "hemen", "🔔 Masa 3 - Garson çağırıldı"},
		{"general with message", RequestTypeGeneral, "Su rica ediyorum", "📋 Masa 3 - İstek: Su rica ediyorum"},
		{"general default message", RequestTypeGeneral, "", "📋 Masa 3 - İstek: İstek var"},
		{"complaint", RequestTypeComplaint, "Yemek soğuk", "⚠️ Masa 3 - Şikayet: Yemek soğuk"},
		{"complaint default message", RequestTypeComplaint, "", "⚠️ Masa 3 - Şikayet: Şikayet var"},
		{"help", RequestTypeHelp, "Çatal düştü", "🆘 Masa 3 - Yardım istendi: Çatal düştü"},
		{"help default message", RequestTypeHelp, "", "🆘 Masa 3 - Yardım istendi: Yardım gerekli"},
		{"unknown type falls back", "HESAP", "Hesap lütfen", "📢 Masa 3 - HESAP: Hesap lütfen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &TableRequest{RequestType: tt.requestType, Message: tt.message}
			if got := r.NotificationText("Masa 3"); got != tt.want {
				t.Errorf("NotificationText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreateTableRequestRequest_Validate(t *testing.T) {
	valid := &CreateTableRequestRequest{TableID: 1, RequestType: RequestTypeHelp}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	invalid := []*CreateTableRequestRequest{
		{RequestType: RequestTypeHelp},
		{TableID: 1},
	}
	for i, req := range invalid {
		if err := req.Validate(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("invalid[%d]: Validate() error = %v, want ErrInvalidArgument", i, err)
		}
	}
}
