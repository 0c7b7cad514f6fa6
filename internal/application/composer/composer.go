// Package composer renders notification content. It performs no I/O.
package composer

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"motor/internal/domain/constant"
	"motor/internal/domain/entity"
)

// DefaultSubjectPrefix is used when no prefix is configured.
const DefaultSubjectPrefix = "تذكير صيانة"

// Content is a rendered reminder notification.
type Content struct {
	Subject string
	Text    string // messaging channel body
	HTML    string // email channel body
}

// Composer builds notification bodies.
type Composer struct {
	subjectPrefix string
}

// New returns a Composer. An empty prefix falls back to DefaultSubjectPrefix.
func New(subjectPrefix string) *Composer {
	if strings.TrimSpace(subjectPrefix) == "" {
		subjectPrefix = DefaultSubjectPrefix
	}
	return &Composer{subjectPrefix: subjectPrefix}
}

type detail struct {
	Label string
	Value string
}

type reminderView struct {
	Title     string
	OwnerName string
	DueDate   string
	Window    string
	Make      string
	Model     string
	Year      string
	Type      string
	Message   string
	Optional  []detail
}

// WindowPhrase is the human phrase for a window.
func WindowPhrase(kind constant.WindowKind) string {
	if kind == constant.WindowTomorrow {
		return "غداً"
	}
	return "خلال الأسبوع القادم"
}

// BuildReminder renders the notification for r. v and owner must not be nil.
func (c *Composer) BuildReminder(r *entity.Reminder, v *entity.Vehicle, owner *entity.User, kind constant.WindowKind) (Content, error) {
	view := reminderView{
		Title:     c.subjectPrefix,
		OwnerName: owner.Name,
		Window:    WindowPhrase(kind),
		Make:      v.Make,
		Model:     v.Model,
		Year:      strconv.Itoa(v.Year),
		Type:      TypeLabel(r.Type),
		Message:   r.Message,
	}
	if r.DueDate != nil {
		view.DueDate = r.DueDate.String()
	}
	if r.Mileage != nil {
		view.Optional = append(view.Optional, detail{Label: "الكيلومترات المستهدفة", Value: strconv.Itoa(*r.Mileage)})
	}
	if r.Priority != nil {
		view.Optional = append(view.Optional, detail{Label: "الأولوية", Value: PriorityLabel(*r.Priority)})
	}
	if r.Category != nil {
		view.Optional = append(view.Optional, detail{Label: "الفئة", Value: *r.Category})
	}

	var html strings.Builder
	if err := reminderHTML.Execute(&html, view); err != nil {
		return Content{}, fmt.Errorf("render reminder %d: %w", r.ID, err)
	}

	return Content{
		Subject: fmt.Sprintf("%s - %s %s", c.subjectPrefix, v.Make, v.Model),
		Text:    reminderText(view),
		HTML:    html.String(),
	}, nil
}

func reminderText(view reminderView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "مرحبًا %s 👋\n\n", view.OwnerName)
	fmt.Fprintf(&b, "🔔 %s\n", view.Title)
	fmt.Fprintf(&b, "📅 التاريخ: %s (%s)\n\n", view.DueDate, view.Window)
	b.WriteString("🚗 تفاصيل السيارة:\n")
	fmt.Fprintf(&b, "• الماركة: %s\n", view.Make)
	fmt.Fprintf(&b, "• الموديل: %s\n", view.Model)
	fmt.Fprintf(&b, "• السنة: %s\n\n", view.Year)
	b.WriteString("⚠️ تفاصيل التذكير:\n")
	fmt.Fprintf(&b, "• النوع: %s\n", view.Type)
	fmt.Fprintf(&b, "• الرسالة: %s\n", view.Message)
	for _, d := range view.Optional {
		fmt.Fprintf(&b, "• %s: %s\n", d.Label, d.Value)
	}
	b.WriteString("\nيرجى مراجعة جدول الصيانة والاستعداد للصيانة المطلوبة.")
	return b.String()
}

// BuildMileageNudge renders the weekly odometer update request for v.
func BuildMileageNudge(v *entity.Vehicle) string {
	mileage := "غير مسجل"
	if v.Mileage != nil {
		mileage = strconv.Itoa(*v.Mileage)
	}

	var b strings.Builder
	b.WriteString("🚗 تذكير أسبوعي لتحديث عداد السيارة\n\n")
	b.WriteString("📋 تفاصيل السيارة:\n")
	fmt.Fprintf(&b, "• الماركة: %s\n", v.Make)
	fmt.Fprintf(&b, "• الموديل: %s\n", v.Model)
	fmt.Fprintf(&b, "• السنة: %d\n\n", v.Year)
	fmt.Fprintf(&b, "🔢 العداد الحالي المسجل: %s\n\n", mileage)
	b.WriteString("💡 يرجى إدخال القراءة الجديدة للعداد عبر التطبيق للحفاظ على سجل الصيانة محدثاً.")
	return b.String()
}

var reminderHTML = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html lang="ar" dir="rtl">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
</head>
<body style="margin:0;background:#f6f7f9;font-family:Tahoma,Arial,sans-serif;line-height:1.9;color:#0f172a">
  <div style="max-width:600px;margin:24px auto;background:#ffffff;border:1px solid #e5e7eb;border-radius:14px;overflow:hidden">
    <div style="background:#3b82f6;color:#fff;padding:16px 20px;display:flex;align-items:center;gap:10px">
      <div style="font-size:24px">🔔</div>
      <div style="font-size:16px;font-weight:700">{{.Title}}</div>
      <div style="margin-inline-start:auto;font-size:14px;opacity:.9">Motor 🚗</div>
    </div>
    <div style="padding:22px">
      <p style="margin:0 0 10px;font-size:16px">مرحبًا {{.OwnerName}} 👋</p>
      <div style="background:#f0f9ff;border:1px solid #bae6fd;border-radius:12px;padding:14px 16px;margin:10px 0">
        <div style="font-weight:700;margin-bottom:6px">🔔 تذكير الصيانة</div>
        <div style="font-size:15px">📅 التاريخ:</div>
        <div style="font-size:20px;font-weight:800;margin-top:4px;letter-spacing:.3px">{{.DueDate}} ({{.Window}})</div>
      </div>
      <div style="background:#f8fafc;border:1px solid #e2e8f0;border-radius:12px;padding:12px 14px;margin-top:12px">
        <div style="font-weight:700;margin-bottom:8px">🚗 تفاصيل السيارة</div>
        <ul style="margin:0;padding:0 18px;color:#334155;font-size:14px">
          <li>🏷️ الماركة: {{.Make}}</li>
          <li>🚘 الموديل: {{.Model}}</li>
          <li>📆 السنة: {{.Year}}</li>
        </ul>
      </div>
      <div style="background:#fef3c7;border:1px solid #fde68a;border-radius:12px;padding:12px 14px;margin-top:12px">
        <div style="font-weight:700;margin-bottom:8px">⚠️ تفاصيل التذكير</div>
        <ul style="margin:0;padding:0 18px;color:#334155;font-size:14px">
          <li>🔧 النوع: {{.Type}}</li>
          <li>💬 الرسالة: {{.Message}}</li>
          {{- range .Optional}}
          <li>{{.Label}}: {{.Value}}</li>
          {{- end}}
        </ul>
      </div>
      <ul style="margin:14px 0 0;padding:0 18px;color:#334155;font-size:14px">
        <li>يرجى مراجعة جدول الصيانة والاستعداد للصيانة المطلوبة.</li>
      </ul>
      <div style="margin-top:18px;padding:12px 14px;border:1px dashed #e5e7eb;border-radius:10px;font-size:12px;color:#64748b">
        هذه رسالة تذكير آلية من تطبيق Motor.
      </div>
    </div>
  </div>
</body>
</html>
`))
