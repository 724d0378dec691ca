package typing_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/herofx/internal/typing"
)

type fakeClock struct {
	waits []time.Duration
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.waits = append(c.waits, d)
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

var _ = Describe("Typewriter", func() {
	const (
		typeDelay   = 150 * time.Millisecond
		deleteDelay = 50 * time.Millisecond
		hold        = 2000 * time.Millisecond
		next        = 500 * time.Millisecond
	)

	It("rejects an empty word list", func() {
		_, err := typing.New(nil, typing.DefaultTiming())
		Expect(err).To(MatchError(typing.ErrNoWords))
	})

	It("rejects empty words", func() {
		_, err := typing.New([]string{"ok", ""}, typing.DefaultTiming())
		Expect(err).To(MatchError(typing.ErrEmptyWord))
	})

	It("starts with nothing displayed", func() {
		tw, err := typing.New([]string{"A"}, typing.DefaultTiming())
		Expect(err).NotTo(HaveOccurred())
		Expect(tw.Text()).To(BeEmpty())
	})

	It("types, holds, deletes, pauses and wraps", func() {
		tw, err := typing.New([]string{"A", "BB"}, typing.DefaultTiming())
		Expect(err).NotTo(HaveOccurred())

		want := []typing.Step{
			{Text: "A", Delay: hold},
			{Text: "", Delay: next},
			{Text: "B", Delay: typeDelay},
			{Text: "BB", Delay: hold},
			{Text: "B", Delay: deleteDelay},
			{Text: "", Delay: next},
			{Text: "A", Delay: hold},
			{Text: "", Delay: next},
		}
		var got []typing.Step
		for range want {
			got = append(got, tw.Step())
		}
		Expect(got).To(Equal(want))
		Expect(tw.Word()).To(Equal(1))
	})

	It("counts runes, not bytes", func() {
		tw, err := typing.New([]string{"héé"}, typing.DefaultTiming())
		Expect(err).NotTo(HaveOccurred())
		Expect(tw.Step().Text).To(Equal("h"))
		Expect(tw.Step().Text).To(Equal("hé"))
		Expect(tw.Step()).To(Equal(typing.Step{Text: "héé", Delay: hold}))
	})

	It("uses the configured timing", func() {
		timing := typing.Timing{Type: 1, Delete: 2, Hold: 3, Next: 4}
		tw, err := typing.New([]string{"ab"}, timing)
		Expect(err).NotTo(HaveOccurred())

		var delays []time.Duration
		for i := 0; i < 4; i++ {
			delays = append(delays, tw.Step().Delay)
		}
		Expect(delays).To(Equal([]time.Duration{1, 3, 2, 4}))
	})

	Describe("Run", func() {
		It("shows every step and waits the step's delay", func() {
			tw, err := typing.New([]string{"A", "BB"}, typing.DefaultTiming())
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			clock := &fakeClock{}
			var shown []string
			err = tw.Run(ctx, clock, func(s string) {
				shown = append(shown, s)
				if len(shown) == 6 {
					cancel()
				}
			})
			Expect(err).To(MatchError(context.Canceled))
			Expect(shown).To(Equal([]string{"A", "", "B", "BB", "B", ""}))
			Expect(clock.waits).To(Equal([]time.Duration{hold, next, typeDelay, hold, deleteDelay}))
		})
	})
})
