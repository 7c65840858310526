package fdicons

import "testing"

func benchRegistry(b *testing.B) *Registry {
	base := b.TempDir()
	writeTheme(b, base, "Arc", `[Icon Theme]
Name=Arc
Inherits=Parent
Directories=24x24/apps

[24x24/apps]
Size=24
`)
	writeTheme(b, base, "Parent", `[Icon Theme]
Name=Parent
Directories=24x24/apps

[24x24/apps]
Size=24
`)
	writeTheme(b, base, "hicolor", hicolorIndex, "22x22/apps/firefox.png")
	return testRegistry(b, base)
}

func BenchmarkFind(b *testing.B) {
	reg := benchRegistry(b)
	query := Lookup("firefox").WithRegistry(reg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := query.Find(); !ok {
			b.Fatal("lookup missed")
		}
	}
}

// Worst case: the icon is only reachable through the full fallback chain.
func BenchmarkFindThroughInheritance(b *testing.B) {
	reg := benchRegistry(b)
	query := Lookup("firefox").WithTheme("Arc").WithRegistry(reg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := query.Find(); !ok {
			b.Fatal("lookup missed")
		}
	}
}

func BenchmarkFindCached(b *testing.B) {
	reg := benchRegistry(b)
	query := Lookup("firefox").WithTheme("Arc").WithRegistry(reg).WithCacheStore(NewCache())
	query.Find()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := query.Find(); !ok {
			b.Fatal("lookup missed")
		}
	}
}
