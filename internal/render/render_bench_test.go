package render

import "testing"

// benchReply approximates one counsellor answer: prose, a list, a code
// span, and an emoji shortcode.
var benchReply = `# Feeling Overwhelmed

It is **normal** to feel this way before exams. A few things that help:

- Break revision into 25 minute blocks
- Sleep at a fixed time
- Talk to someone you trust

Run ` + "`nexchat doctor`" + ` if the app itself misbehaves. Take care :heart:
`

func BenchmarkMarkdown(b *testing.B) {
	opts := DefaultOptions()
	if _, err := Markdown(benchReply, opts); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Markdown(benchReply, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarkdown_ColdPool(b *testing.B) {
	opts := DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		resetPools()
		if _, err := Markdown(benchReply, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarkdown_Parallel(b *testing.B) {
	opts := DefaultOptions()
	if _, err := Markdown(benchReply, opts); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := Markdown(benchReply, opts); err != nil {
				b.Fatal(err)
			}
		}
	})
}
