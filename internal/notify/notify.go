package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/storefront/internal/models"
	log "github.com/sirupsen/logrus"
)

// Notifier is told about every placed order.
type Notifier interface {
	OrderPlaced(ctx context.Context, order models.Order) error
}

type NopNotifier struct{}

func (NopNotifier) OrderPlaced(context.Context, models.Order) error { return nil }

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPConfig struct {
	Server       string
	Port         string
	User         string
	Password     string
	From         string
	AuthDisabled bool
	SummaryTo    string
}

// SMTPNotifier mails an order confirmation to the customer and records the order in a Redis
// daily log that feeds the daily sales summary. rdb may be nil.
type SMTPNotifier struct {
	cfg  SMTPConfig
	rdb  *redis.Client
	send SendFunc
}

const DailyOrderLogKey = "orders:log:daily"

type OrderLogEntry struct {
	OrderID   string    `json:"order_id"`
	Email     string    `json:"email"`
	ItemCount int       `json:"item_count"`
	Total     string    `json:"total"`
	Time      time.Time `json:"time"`
}

func NewSMTPNotifier(cfg SMTPConfig, rdb *redis.Client) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, rdb: rdb, send: smtp.SendMail}
}

// WithSender replaces the mail transport.
func (n *SMTPNotifier) WithSender(send SendFunc) *SMTPNotifier {
	n.send = send
	return n
}

func (n *SMTPNotifier) auth() smtp.Auth {
	if n.cfg.AuthDisabled {
		return nil
	}
	return smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Server)
}

func (n *SMTPNotifier) addr() string {
	return fmt.Sprintf("%s:%s", n.cfg.Server, n.cfg.Port)
}

// OrderPlaced sends the confirmation in the background; delivery failures are only logged.
func (n *SMTPNotifier) OrderPlaced(ctx context.Context, order models.Order) error {
	msg := confirmationMessage(n.cfg.From, order)

	go func() {
		err := n.send(n.addr(), n.auth(), n.cfg.From, []string{order.Customer.Email}, msg)
		if err != nil {
			log.WithField("order_id", order.ID).Printf("failed to send order confirmation: %v", err)
		}
	}()

	return n.logOrder(ctx, order)
}

func confirmationMessage(from string, order models.Order) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hello %s,\n\n", order.Customer.FirstName)
	fmt.Fprintf(&sb, "Thank you for your order %s.\n\n", order.ID)
	for _, item := range order.Items {
		fmt.Fprintf(&sb, "%d x %s  $%s\n", item.Quantity, item.Title, item.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(&sb, "\nSubtotal (%d items): $%s\n", order.ItemCount, order.Total.StringFixed(2))
	fmt.Fprintf(&sb, "\nShipping to %s, %s %s.\n", order.Customer.Address, order.Customer.City, order.Customer.ZipCode)
	sb.WriteString("Your items will be delivered within 2-3 business days.\n")

	headers := strings.Join([]string{
		"From: " + from,
		"To: " + order.Customer.Email,
		"Subject: Order confirmation " + order.ID,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
	}, "\r\n")
	return []byte(headers + "\r\n\r\n" + sb.String())
}

func (n *SMTPNotifier) logOrder(ctx context.Context, order models.Order) error {
	if n.rdb == nil {
		return nil
	}
	entry := OrderLogEntry{
		OrderID:   order.ID,
		Email:     order.Customer.Email,
		ItemCount: order.ItemCount,
		Total:     order.Total.StringFixed(2),
		Time:      order.CreatedAt,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "marshal order log entry failed")
	}
	if err := n.rdb.RPush(ctx, DailyOrderLogKey, data).Err(); err != nil {
		return errors.Wrap(err, "redis rpush failed")
	}
	return nil
}

// StartDailySummary sends the daily summary every day at 23:59 until ctx is done.
func (n *SMTPNotifier) StartDailySummary(ctx context.Context) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(24 * time.Hour)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(next)):
			if err := n.SendDailySummary(ctx); err != nil {
				log.Printf("daily order summary failed: %v", err)
			}
		}
	}
}

// SendDailySummary mails the orders logged since the last summary and removes them from the log
// once the mail is sent.
func (n *SMTPNotifier) SendDailySummary(ctx context.Context) error {
	if n.rdb == nil || n.cfg.SummaryTo == "" {
		return nil
	}

	entries, err := n.rdb.LRange(ctx, DailyOrderLogKey, 0, -1).Result()
	if err != nil {
		return errors.Wrap(err, "redis lrange failed")
	}
	if len(entries) == 0 {
		return nil
	}

	msg := summaryMessage(n.cfg.From, n.cfg.SummaryTo, entries)
	if err := n.send(n.addr(), n.auth(), n.cfg.From, []string{n.cfg.SummaryTo}, msg); err != nil {
		return errors.Wrap(err, "send summary failed")
	}

	// Only drop what was mailed; orders logged meanwhile wait for the next summary.
	if err := n.rdb.LTrim(ctx, DailyOrderLogKey, int64(len(entries)), -1).Err(); err != nil {
		return errors.Wrap(err, "redis ltrim failed")
	}
	log.Println("daily order summary sent via SMTP")
	return nil
}

func summaryMessage(from, to string, entries []string) []byte {
	var logs []OrderLogEntry
	items := 0
	for _, item := range entries {
		var entry OrderLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			logs = append(logs, entry)
			items += entry.ItemCount
		}
	}

	var sb strings.Builder
	sb.WriteString("<h2>Daily Order Summary</h2>")
	sb.WriteString(fmt.Sprintf("<p>Orders: <strong>%d</strong>, items: <strong>%d</strong></p>", len(logs), items))
	sb.WriteString("<ul>")
	for _, entry := range logs {
		sb.WriteString(fmt.Sprintf("<li><code>%s</code> %s: %d items, $%s at %s</li>",
			entry.OrderID, entry.Email, entry.ItemCount, entry.Total, entry.Time.Format(time.RFC822)))
	}
	sb.WriteString("</ul>")

	return []byte(strings.Join([]string{
		"From: " + from,
		"To: " + to,
		"Subject: Daily Order Report",
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		sb.String(),
	}, "\r\n"))
}
