package payment

import (
	"strings"

	"github.com/shopspring/decimal"
)

var InstructionMap = map[MethodType][]string{
	TypeCOD: {
		"Your order will be delivered to the selected address",
		"Keep {{amount}} ready in cash when the delivery partner arrives",
		"Share the delivery OTP {{otp}} only after receiving your order",
		"Pay the delivery partner directly and collect your receipt",
	},

	TypeUPI: {
		"Open any UPI app (GPay, PhonePe, Paytm)",
		"Approve the collect request of {{amount}} sent to {{upi_id}}",
		"Enter your UPI PIN to complete the payment",
		"Keep the transaction reference for your records",
	},

	TypeCard: {
		"Your card ending in {{last4}} will be charged {{amount}}",
		"Complete the 3D Secure verification with the OTP from your bank",
		"Wait until the payment is confirmed before closing the app",
	},

	TypeWallet: {
		"Make sure your wallet balance covers {{amount}}",
		"Confirm the payment in the wallet app",
		"Enter your wallet PIN to finish the transaction",
	},
}

var aliases = map[string]MethodType{
	"cod":              TypeCOD,
	"cash":             TypeCOD,
	"cash on delivery": TypeCOD,
	"upi":              TypeUPI,
	"card":             TypeCard,
	"credit card":      TypeCard,
	"debit card":       TypeCard,
	"wallet":           TypeWallet,
}

// ParseMethodType maps free-form checkout text ("Cash on Delivery", "UPI")
// to a method type.
func ParseMethodType(s string) (MethodType, bool) {
	t, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	return t, ok
}

func GetInstructions(method MethodType) []string {
	if steps, ok := InstructionMap[method]; ok {
		return steps
	}

	return []string{
		"Follow the payment steps shown at checkout",
	}
}

type InstructionVars map[string]string

func InjectVariables(
	steps []string,
	vars InstructionVars,
) []string {
	result := make([]string, 0, len(steps))

	for _, step := range steps {
		updated := step
		for key, value := range vars {
			updated = strings.ReplaceAll(
				updated,
				"{{"+key+"}}",
				value,
			)
		}
		result = append(result, updated)
	}

	return result
}

func FormatAmount(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(2)
}

// Instructions renders the steps for paying amount with the given checkout
// method text. vars may add otp, upi_id or last4.
func Instructions(method string, amount decimal.Decimal, vars InstructionVars) []string {
	t, _ := ParseMethodType(method)

	all := InstructionVars{"amount": FormatAmount(amount)}
	for k, v := range vars {
		all[k] = v
	}
	return InjectVariables(GetInstructions(t), all)
}
