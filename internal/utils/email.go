package utils

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"sifted_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

func SendConfirmationEmail(to, subject, htmlBody string, pdfAttachment []byte) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@siftedhouse.id"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if pdfAttachment != nil {
		msg.AttachReader("invoice_sifted_house.pdf", bytes.NewReader(pdfAttachment))
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Sending email to", to)
	return client.DialAndSend(msg)
}

// GenerateOrderConfirmationHTML builds the (Indonesian) order confirmation
// body sent once the gateway reports the payment as settled.
func GenerateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #E5D8CC;">%s</td>
				<td style="padding: 8px; border: 1px solid #E5D8CC;">%d</td>
				<td style="padding: 8px; border: 1px solid #E5D8CC;">%s</td>
				<td style="padding: 8px; border: 1px solid #E5D8CC;">%s</td>
			</tr>`,
			item.Name, item.Quantity,
			FormatRupiah(item.Price),
			FormatRupiah(item.Price*float64(item.Quantity)))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="id">
<head>
	<meta charset="UTF-8">
	<title>Konfirmasi Pesanan</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #FFFBE7; padding: 20px; color: #37432B;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2>Terima kasih, %s!</h2>
		<p>Pembayaran untuk pesananmu sudah kami terima.</p>

		<h3>Detail Pesanan</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #E5D8CC;">
					<th style="padding: 8px; text-align: left; border: 1px solid #E5D8CC;">Produk</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #E5D8CC;">Qty</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #E5D8CC;">Harga Satuan</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #E5D8CC;">Subtotal</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>

		<p style="font-size: 18px;"><strong>Total Pembayaran: %s</strong></p>
		<p>Status pesanan akan kami kirim ke nomor WhatsApp %s.</p>
		<p style="color: #6A6F4C;">Sifted House — sampai jumpa lagi ☕</p>
	</div>
</body>
</html>`, order.Customer.Name, itemsHTML, FormatRupiah(order.Total), order.Customer.Phone)
}
