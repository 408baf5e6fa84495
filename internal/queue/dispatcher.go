package queue

import "context"

// MailDispatcher satisfies the mail.Sender contract by handing the message
// to the broker; the notifier worker performs the actual SMTP delivery.
// A publish failure is the dispatch failure the caller sees.
type MailDispatcher struct {
	Pub      Publisher
	Exchange string
}

func (d *MailDispatcher) Send(ctx context.Context, to, subject, body string) error {
	return d.Pub.Publish(ctx, d.Exchange, KeyMailRequested,
		MailRequested{To: to, Subject: subject, Body: body}, "")
}
