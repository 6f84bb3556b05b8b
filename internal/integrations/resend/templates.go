package resend

import (
	"fmt"
	"html"
)

// HTML-шаблоны писем. Язык писем немецкий, как и вся клиентская часть.

func confirmationHTML(e ConfirmationEmail, cancelLink, rescheduleLink string) string {
	return fmt.Sprintf(`
<h2>Terminbestätigung</h2>
<p>Hallo %s,</p>
<p>Ihr Beratungsgespräch wurde erfolgreich gebucht:</p>
<p><strong>Datum:</strong> %s<br/>
<strong>Uhrzeit:</strong> %s</p>
<p><a href="%s">An Microsoft-Teams-Besprechung teilnehmen</a></p>
<p>Sie können den Termin jederzeit
<a href="%s">absagen</a> oder <a href="%s">verschieben</a>.</p>
<p>Wir freuen uns auf das Gespräch!</p>`,
		html.EscapeString(e.Name),
		html.EscapeString(e.Date),
		html.EscapeString(e.Time),
		e.MeetingLink, cancelLink, rescheduleLink)
}

func reminderHTML(e ReminderEmail) string {
	var lead string
	if e.HoursUntil == 1 {
		lead = "Ihr Beratungsgespräch beginnt in einer Stunde."
	} else {
		lead = "Ihr Beratungsgespräch findet morgen statt."
	}

	return fmt.Sprintf(`
<h2>Erinnerung an Ihren Termin</h2>
<p>Hallo %s,</p>
<p>%s</p>
<p><strong>Datum:</strong> %s<br/>
<strong>Uhrzeit:</strong> %s</p>
<p><a href="%s">An Microsoft-Teams-Besprechung teilnehmen</a></p>`,
		html.EscapeString(e.Name),
		lead,
		html.EscapeString(e.Date),
		html.EscapeString(e.Time),
		e.MeetingLink)
}

func cancellationHTML(e CancellationEmail, rebookLink string) string {
	return fmt.Sprintf(`
<h2>Termin abgesagt</h2>
<p>Hallo %s,</p>
<p>Ihr Termin am %s um %s wurde abgesagt.</p>
<p>Sie können jederzeit <a href="%s">einen neuen Termin buchen</a>.</p>`,
		html.EscapeString(e.Name),
		html.EscapeString(e.Date),
		html.EscapeString(e.Time),
		rebookLink)
}

func cvBackupHTML(e CVBackupEmail) string {
	return fmt.Sprintf(`
<h2>Neuer Lebenslauf eingegangen</h2>
<p><strong>Kandidat:</strong> %s</p>
<p><strong>E-Mail:</strong> %s</p>
<p><strong>Position:</strong> %s</p>
<p>Der Lebenslauf ist als Anhang beigefügt und wurde auch in der Datenbank gespeichert.</p>`,
		html.EscapeString(e.CandidateName),
		html.EscapeString(e.CandidateEmail),
		html.EscapeString(e.Position))
}
