package notify

import "fmt"

// ApplicationConfirmation acknowledges a submitted application to the
// applicant.
func ApplicationConfirmation(to, jobTitle, companyName string) Message {
	return Message{
		To:      to,
		Subject: fmt.Sprintf("Application Received - %s at %s", jobTitle, companyName),
		HTMLBody: fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">Application Received</h2>
  <p>Dear Applicant,</p>
  <p>Thank you for your interest in the <strong>%s</strong> position at <strong>%s</strong>.</p>
  <p>We have received your application and will review it shortly. You should expect to hear from us within 1-2 business days.</p>
  <p>Best regards,<br>The JobPortal Team</p>
</div>`, jobTitle, companyName),
	}
}

// NewApplicationNotice announces a fresh applicant to the job's owner.
func NewApplicationNotice(to, applicantName, jobTitle string) Message {
	return Message{
		To:      to,
		Subject: fmt.Sprintf("New Application - %s", jobTitle),
		HTMLBody: fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">New Job Application</h2>
  <p>A new application has been submitted for the <strong>%s</strong> position.</p>
  <p><strong>Applicant:</strong> %s</p>
  <p>Please log in to your admin dashboard to review the application.</p>
  <p>Best regards,<br>The JobPortal System</p>
</div>`, jobTitle, applicantName),
	}
}

// ContactConfirmation acknowledges a contact-form submission to the sender.
func ContactConfirmation(to, name string) Message {
	return Message{
		To:      to,
		Subject: "Thank you for contacting us",
		HTMLBody: fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">Thank You for Contacting Us</h2>
  <p>Dear %s,</p>
  <p>Thank you for reaching out to us. We have received your message and will get back to you as soon as possible.</p>
  <p>Best regards,<br>The JobPortal Team</p>
</div>`, name),
	}
}
