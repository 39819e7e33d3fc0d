package serviceorder

import (
	"fmt"
	"strings"
)

const invoiceRule = "========================================================"
const invoiceSubRule = "--------------------------------------------------------"

// RenderInvoice produces the printable invoice for an order. It is a
// pure formatter; callers decide whether the order is in a state worth
// printing.
func RenderInvoice(o *ServiceOrder) string {
	var b strings.Builder

	issuedAt := "N/A"
	if o.IssuedAt != nil {
		issuedAt = o.IssuedAt.String()
	}

	b.WriteString(invoiceRule + "\n")
	b.WriteString("                    SERVICE INVOICE\n")
	b.WriteString(invoiceRule + "\n")
	b.WriteString("OFICINA MILHO VERDE AUTOMOTIVA\n")
	b.WriteString("CNPJ: 12.345.678/**01-**\n")
	b.WriteString("Rua das Flores, 123 - Milho Verde, MG\n")
	b.WriteString(invoiceSubRule + "\n")
	fmt.Fprintf(&b, "Invoice No: %06d\n", o.ID)
	fmt.Fprintf(&b, "Issued At: %s\n", issuedAt)
	b.WriteString(invoiceSubRule + "\n")
	b.WriteString("CLIENT:\n")
	fmt.Fprintf(&b, "  Name: %s\n", o.ClientName)
	fmt.Fprintf(&b, "  Vehicle: %s\n", o.VehicleModel)
	fmt.Fprintf(&b, "  Plate: %s\n", o.VehiclePlate)
	b.WriteString(invoiceSubRule + "\n")
	b.WriteString("ITEMIZED CHARGES\n")
	b.WriteString(invoiceSubRule + "\n")

	if len(o.Services) > 0 {
		b.WriteString("SERVICES RENDERED:\n")
		for _, s := range o.Services {
			fmt.Fprintf(&b, "  - %-35s %15s\n", s.Description, fmt.Sprintf("R$ %.2f", s.Price))
		}
	}
	if len(o.Parts) > 0 {
		b.WriteString("\nPARTS USED:\n")
		for _, p := range o.Parts {
			fmt.Fprintf(&b, "  - %-35s %15s\n", p.Name, fmt.Sprintf("R$ %.2f", p.SalePrice))
		}
	}

	b.WriteString(invoiceRule + "\n")
	fmt.Fprintf(&b, "TOTAL %44s\n", fmt.Sprintf("R$ %.2f", o.Total))
	b.WriteString(invoiceRule + "\n")
	b.WriteString("Thank you for your business!\n")

	return b.String()
}
