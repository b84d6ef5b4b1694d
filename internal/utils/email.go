package utils

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/tonmoytt/All-it-shopping-server/internal/models"
)

// SendPaymentPendingEmail envoie le récapitulatif de commande après
// l'enregistrement du paiement. Silencieux si le SMTP n'est pas configuré.
func SendPaymentPendingEmail(to string, record models.PaymentRecord) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("⚠️ SMTP_HOST absent — e-mail de confirmation non envoyé")
		return nil
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@all-it-shopping.com"
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Votre commande " + record.Reference + " est en attente de paiement")
	msg.SetBodyString(mail.TypeTextHTML, buildPaymentPendingHTML(record))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}

// buildPaymentPendingHTML génère le HTML du récapitulatif de commande
func buildPaymentPendingHTML(record models.PaymentRecord) string {
	var items strings.Builder
	for _, item := range record.Orders {
		items.WriteString(fmt.Sprintf(`
			<tr>
				<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%.2f€</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%.2f€</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity)))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Commande en attente de paiement</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Commande reçue 🛒</h2>
		<p>Bonjour %s,</p>
		<p>Votre commande <strong>%s</strong> a bien été enregistrée et sera traitée dès réception du paiement.</p>

		<h3>Récapitulatif</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Produit</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Quantité</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Prix unitaire</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>

		<p style="font-size: 18px;"><strong>Montant total : %.2f€</strong></p>
		<p style="color: #777; font-size: 13px;">Statut actuel : %s</p>
	</div>
</body>
</html>`, record.Billing.Name, record.Reference, items.String(), record.TotalAmount, record.Status)
}
