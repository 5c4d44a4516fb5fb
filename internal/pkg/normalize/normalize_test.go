package normalize

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"  jurel ", "JUREL"},
		{"región de aysén", "REGIÓN DE AYSÉN"},
		{"año", "AÑO"},
		{" merluza austral ", "MERLUZA AUSTRAL"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Text(tt.in), "Text(%q)", tt.in)
	}
}

func TestRegion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Los Lagos", "LAGOS"},
		{"X REGION", "LAGOS"},
		{"x región de los lagos", "LAGOS"},
		{"X", "LAGOS"},
		{"10", "LAGOS"},
		{"10,0", "LAGOS"},
		{"10.0", "LAGOS"},
		{"Aysén", "AYSEN"},
		{"aysen del general carlos ibañez", "AYSEN"},
		{"XI", "AYSEN"},
		{"11", "AYSEN"},
		{"Magallanes y la Antártica Chilena", "MAGALLANES"},
		{"antartica", "MAGALLANES"},
		{"XII", "MAGALLANES"},
		{"12,0", "MAGALLANES"},
		{"biobío", "BIOBÍO"},
		{"IX REGION", "IX REGION"},
		{"IX Región de la Araucanía", "IX REGIÓN DE LA ARAUCANÍA"},
		{"XIV REGION", "XIV REGION"},
		{"Región: X REGION", "LAGOS"},
		{"8", "8"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Region(tt.in), "Region(%q)", tt.in)
	}
}

func TestText_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				assert.Equal(t, "AYSÉN", Text("aysén"))
			}
		}()
	}
	wg.Wait()
}

func TestRegion_Idempotent(t *testing.T) {
	inputs := []string{"Los Lagos", "10,0", "XII", "Aysén", "biobío", "  valparaíso ", "XIV", "", "7.5"}
	for _, in := range inputs {
		once := Region(in)
		assert.Equal(t, once, Region(once), "Region(Region(%q))", in)
	}
}

func TestIsMacroRegion(t *testing.T) {
	assert.True(t, IsMacroRegion("los lagos"))
	assert.True(t, IsMacroRegion("11.0"))
	assert.True(t, IsMacroRegion("XII"))
	assert.False(t, IsMacroRegion("BIOBIO"))
	assert.False(t, IsMacroRegion("IX REGION"))
	assert.False(t, IsMacroRegion("IX Región de la Araucanía"))
	assert.False(t, IsMacroRegion(""))
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"-", 0},
		{"N/A", 0},
		{"null", 0},
		{"abc", 0},
		{"12", 12},
		{"12.5", 12.5},
		{"12,5", 12.5},
		{"1.234,56", 1234.56},
		{"1,234.56", 1234.56},
		{"1234,5678", 12345678},
		{"12.5 t", 12.5},
		{"-3,25", -3.25},
		{"  7,1  ", 7.1},
		{"1234567890", 1234567890},
		{"1e400", 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Decimal(tt.in), 1e-9, "Decimal(%q)", tt.in)
	}
}

func TestDecimal_EuropeanAnglo(t *testing.T) {
	pairs := [][2]string{
		{"1.234,56", "1,234.56"},
		{"0,5", "0.5"},
		{"98.765.432,1", "98,765,432.1"},
	}
	for _, p := range pairs {
		assert.Equal(t, Decimal(p[0]), Decimal(p[1]), "%q vs %q", p[0], p[1])
	}
}

func TestDecimal_Total(t *testing.T) {
	garbage := []string{",", ".", ",,", "..", "+", "-.", "e5", "1e", "NaN", "Infinity", "--1", "1,2,3,4", "\x00", "٣"}
	for _, in := range garbage {
		f := Decimal(in)
		assert.False(t, math.IsNaN(f) || math.IsInf(f, 0), "Decimal(%q) = %v", in, f)
	}
}

func TestInteger(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"N/A", 0},
		{"2013", 2013},
		{"2013,0", 2013},
		{"2013.9", 2013},
		{" 42abc", 42},
		{"-7", -7},
		{"abc", 0},
		{"99999999999999999999999", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Integer(tt.in), "Integer(%q)", tt.in)
	}
}

func TestYearMonth(t *testing.T) {
	assert.Equal(t, 2020, Year("2020"))
	assert.Equal(t, 1900, Year("1900"))
	assert.Equal(t, 0, Year("1899"))
	assert.Equal(t, 0, Year("2101"))
	assert.Equal(t, 0, Year("x"))

	assert.Equal(t, 1, Month("1"))
	assert.Equal(t, 12, Month("12,0"))
	assert.Equal(t, 0, Month("13"))
	assert.Equal(t, 0, Month("0"))
}

func TestRow_Get(t *testing.T) {
	h := NewHeader([]string{"\ufeffId", "Ano", "Region", "especie", "año"})

	r := h.Row([]string{"7", "2019", "Los Lagos", "jurel", ""})
	assert.Equal(t, "7", r.Get("id"))
	assert.Equal(t, "2019", r.Get(YearAliases...), "empty exact match falls through to next alias")
	assert.Equal(t, "Los Lagos", r.Get(RegionAliases...))
	assert.Equal(t, "", r.Get("toneladas"))

	short := h.Row([]string{"1"})
	assert.Equal(t, "", short.Get("especie"))

	assert.True(t, h.Has("REGIÓN"))
	assert.False(t, h.Has("cd_puerto"))

	var zero Row
	assert.Equal(t, "", zero.Get("id"))
}

func TestLanding(t *testing.T) {
	r := RowFromMap(map[string]string{
		"id":                 "15",
		"año":                "2021",
		"aguas":              "interiores",
		"región":             "X REGION",
		"cd_puerto":          "3",
		"puerto_desembarque": "puerto montt",
		"mes":                "4",
		"cd_especie":         "26",
		"especie":            "chorito",
		"toneladas":          "1.234,5",
		"tipo_agente":        "artesanal",
	})

	l := Landing(r)
	assert.Equal(t, 15, l.ID)
	assert.Equal(t, 2021, l.Year)
	assert.Equal(t, "INTERIORES", l.Waters)
	assert.Equal(t, "LAGOS", l.Region)
	assert.Equal(t, "PUERTO MONTT", l.Port)
	assert.Equal(t, 4, l.Month)
	assert.Equal(t, "CHORITO", l.Species)
	assert.InDelta(t, 1234.5, l.Tons, 1e-9)
	assert.Equal(t, "ARTESANAL", l.AgentType)
}

func TestProduction(t *testing.T) {
	r := RowFromMap(map[string]string{
		"ano":                  "2018",
		"region":               "11",
		"cd_planta":            "901",
		"planta":               "planta sur",
		"mes":                  "13",
		"especie":              "salmon",
		"tipo_elaboración":     "congelado",
		"toneladas_mp":         "100,5",
		"toneladas_elaboradas": "N/A",
	})

	p := Production(r)
	assert.Equal(t, 2018, p.Year)
	assert.Equal(t, "AYSEN", p.Region)
	assert.Equal(t, 901, p.PlantID)
	assert.Equal(t, 0, p.Month)
	assert.Equal(t, "CONGELADO", p.ElaborationType)
	assert.InDelta(t, 100.5, p.RawTons, 1e-9)
	assert.Zero(t, p.ElaboratedTons)
}

func TestPlant(t *testing.T) {
	h := NewHeader([]string{"\ufeffId", "Ano", "Region", "Código Planta", "Nombre_Planta", "Mes", "Código_Especie", "Nombre_especie", "tipo_elaboracion", "Materia prima", "Producción"})
	p := Plant(h.Row([]string{"1", "2022", "Magallanes", "55", "austral", "6", "9", "centolla", "fresco", "10,25", "8,5"}))

	require.Equal(t, 55, p.PlantID)
	assert.Equal(t, 2022, p.Year)
	assert.Equal(t, "MAGALLANES", p.Region)
	assert.Equal(t, "AUSTRAL", p.Plant)
	assert.Equal(t, 6, p.Month)
	assert.Equal(t, 9, p.SpeciesID)
	assert.Equal(t, "CENTOLLA", p.Species)
	assert.InDelta(t, 10.25, p.RawTons, 1e-9)
	assert.InDelta(t, 8.5, p.ElaboratedTons, 1e-9)
}
