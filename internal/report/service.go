// Package report renders a finished consultation as a PDF document for
// the patient or the treating doctor.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/signintech/gopdf"

	"sintomed/internal/catalog"
	"sintomed/internal/consultation"
	"sintomed/internal/patient"
)

const (
	fontName  = "DejaVu"
	textWidth = 500
)

// DejaVuSans covers the accented characters the catalog uses.
var defaultFontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

type Service struct {
	reg       *catalog.SymptomRegistry
	fontPaths []string
}

func NewService(reg *catalog.SymptomRegistry) *Service {
	return &Service{reg: reg, fontPaths: defaultFontPaths}
}

// Generate renders the consultation record. The consultation must carry
// engine output; the service layer guarantees that.
func (s *Service) Generate(c consultation.Consultation) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range s.fontPaths {
		if err := pdf.AddTTFFont(fontName, path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, errors.Wrap(fontErr, "load report font")
	}

	w := writer{pdf: &pdf}

	w.heading(20, "Reporte de Diagnóstico Preliminar")
	w.spacer(10)

	w.font(11)
	w.line(fmt.Sprintf("Fecha: %s", time.Now().Format("02/01/2006 15:04")))
	w.line(fmt.Sprintf("Consulta: %s", c.ID))
	w.line(fmt.Sprintf("Paciente: %s", c.PatientName))
	w.line(fmt.Sprintf("Edad: %d años    Género: %s", c.Age, c.Gender))
	w.spacer(10)

	w.heading(14, "Síntomas Reportados")
	w.font(11)
	if len(c.Symptoms) == 0 {
		w.line("- Sin síntomas registrados.")
	}
	for _, sym := range c.Symptoms {
		name := sym.SymptomID
		if known := s.reg.Get(sym.SymptomID); known != nil {
			name = known.Name
		}
		line := fmt.Sprintf("- %s: %s, %d día(s)",
			name, patient.SeverityLevel(sym.Severity), sym.DurationDays)
		if sym.Note != "" {
			line += fmt.Sprintf(" (%s)", sym.Note)
		}
		w.wrapped(line)
	}
	w.spacer(10)

	w.heading(14, "Diagnósticos Probables")
	for i, d := range c.Diagnoses {
		w.font(12)
		w.line(fmt.Sprintf("%d. %s (%.1f%% de confianza, riesgo %s)",
			i+1, d.Disease.Name, d.Confidence*100, d.RiskLevel))
		w.font(10)
		w.wrapped(d.Explanation)
		w.wrapped("Urgencia: " + string(d.Disease.Urgency))
		w.spacer(5)
	}
	w.spacer(5)

	if len(c.Diagnoses) > 0 {
		top := c.Diagnoses[0].Disease
		if len(top.Recommendations) > 0 {
			w.heading(14, "Recomendaciones")
			w.font(10)
			for _, rec := range top.Recommendations {
				w.wrapped("- " + rec)
			}
			w.spacer(8)
		}
		if len(top.WarningSigns) > 0 {
			w.heading(14, "Señales de Alarma")
			w.font(10)
			for _, warn := range top.WarningSigns {
				w.wrapped("- " + warn)
			}
			w.spacer(8)
		}
	}

	if len(c.Differential) > 0 {
		w.heading(14, "Diagnóstico Diferencial")
		w.font(10)
		for _, d := range c.Differential {
			w.wrapped("- " + d)
		}
		w.spacer(8)
	}

	if len(c.SuggestedTests) > 0 {
		w.heading(14, "Pruebas Sugeridas")
		w.font(10)
		for _, t := range c.SuggestedTests {
			w.wrapped("- " + t)
		}
		w.spacer(8)
	}

	w.font(9)
	w.spacer(10)
	w.wrapped("AVISO: Este reporte es generado por un sistema de orientación preliminar " +
		"y no constituye un diagnóstico médico. Consulte siempre a un profesional de la salud.")

	if w.err != nil {
		return nil, w.err
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "write report")
	}
	return buf.Bytes(), nil
}

// writer wraps the gopdf cursor API so font errors do not litter every
// section. The first error wins; later calls are no-ops.
type writer struct {
	pdf *gopdf.GoPdf
	err error
}

func (w *writer) font(size float64) {
	if w.err != nil {
		return
	}
	w.err = w.pdf.SetFont(fontName, "", size)
}

func (w *writer) heading(size float64, text string) {
	w.font(size)
	w.line(text)
	w.spacer(3)
}

func (w *writer) line(text string) {
	if w.err != nil {
		return
	}
	w.pdf.Cell(nil, text)
	w.pdf.Br(14)
}

func (w *writer) wrapped(text string) {
	if w.err != nil {
		return
	}
	lines, err := w.pdf.SplitText(text, textWidth)
	if err != nil {
		w.line(text)
		return
	}
	for _, l := range lines {
		w.pdf.Cell(nil, l)
		w.pdf.Br(12)
	}
}

func (w *writer) spacer(h float64) {
	if w.err != nil {
		return
	}
	w.pdf.Br(h)
}
