package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ougirez/fishstats/internal/config"
	"github.com/ougirez/fishstats/internal/domain"
	"github.com/ougirez/fishstats/internal/pkg/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func writeLatin1(t *testing.T, dir, name, content string) string {
	t.Helper()

	encoded, err := charmap.ISO8859_1.NewEncoder().String(content)
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0o644))
	return path
}

func landingRegion(l domain.Landing) string { return l.Region }

const landingsCSV = `id;año;aguas;región;cd_puerto;puerto_desembarque;mes;cd_especie;especie;toneladas;tipo_agente
1;2020;interiores;Los Lagos;1;Puerto Montt;1;10;Jurel;100,5;artesanal
2;2020;interiores;Biobío;2;Talcahuano;2;11;Sardina;300;industrial
3;2021;exteriores;Aysén;3;Puerto Aysén;3;12;Merluza;1.200,25;artesanal
4;2021;exteriores;XII;4;Punta Arenas;4
5;2022;;Ñuble;5;Cobquecura;5;13;Congrio;1;artesanal
`

func TestLoad_Latin1RegionalFilter(t *testing.T) {
	path := writeLatin1(t, t.TempDir(), "landings.csv", landingsCSV)

	res, err := Load(context.Background(), path, normalize.Landing, landingRegion, Options{Encoding: "latin1", Delimiter: ';', RegionalFilter: true})
	require.NoError(t, err)

	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 3, res.Kept)
	assert.Equal(t, 2, res.Filtered)
	assert.Zero(t, res.Malformed)
	require.Len(t, res.Records, 3)

	assert.Equal(t, "LAGOS", res.Records[0].Region)
	assert.Equal(t, "JUREL", res.Records[0].Species)
	assert.InDelta(t, 100.5, res.Records[0].Tons, 1e-9)

	assert.Equal(t, "AYSEN", res.Records[1].Region)
	assert.Equal(t, "PUERTO AYSÉN", res.Records[1].Port)
	assert.InDelta(t, 1200.25, res.Records[1].Tons, 1e-9)

	short := res.Records[2]
	assert.Equal(t, "MAGALLANES", short.Region)
	assert.Equal(t, "", short.Species)
	assert.Zero(t, short.Tons)
}

func TestLoad_NoFilter(t *testing.T) {
	path := writeLatin1(t, t.TempDir(), "landings.csv", landingsCSV)

	res, err := Load(context.Background(), path, normalize.Landing, landingRegion, Options{})
	require.NoError(t, err)

	assert.Equal(t, 5, res.Kept)
	assert.Equal(t, "BIOBÍO", res.Records[1].Region)
	assert.Equal(t, "ÑUBLE", res.Records[4].Region)
}

func TestLoad_MissingFile(t *testing.T) {
	res, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), normalize.Landing, landingRegion, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.Zero(t, res.Total)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeLatin1(t, t.TempDir(), "empty.csv", "")

	res, err := Load(context.Background(), path, normalize.Landing, landingRegion, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Records)
}

func TestLoad_StrayQuoteSkipsOnlyItsLine(t *testing.T) {
	content := "id;año;región;especie;toneladas\n" +
		"1;2020;Los Lagos;Jurel;10\n" +
		"2;2020;Los Lagos;\"Chorito;20\n" +
		"3;2020;Los Lagos;Sardina;30\n" +
		"4;2020;Aysén;Merluza \"austral\";40\r\n" +
		"5;2020;Magallanes;\"Centolla\";50\n"
	path := writeLatin1(t, t.TempDir(), "landings.csv", content)

	res, err := Load(context.Background(), path, normalize.Landing, landingRegion, Options{Encoding: "latin1", RegionalFilter: true})
	require.NoError(t, err)

	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 1, res.Malformed)
	assert.Equal(t, 4, res.Kept)
	require.Len(t, res.Records, 4)

	species := make([]string, 0, len(res.Records))
	for _, r := range res.Records {
		species = append(species, r.Species)
	}
	assert.Equal(t, []string{"JUREL", "SARDINA", "MERLUZA \"AUSTRAL\"", "CENTOLLA"}, species)
	assert.InDelta(t, 40, res.Records[2].Tons, 1e-9)
	assert.InDelta(t, 50, res.Records[3].Tons, 1e-9)
}

func TestSplitLine(t *testing.T) {
	values, err := splitLine(`1;"Planta; Sur";x`, ';')
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "Planta; Sur", "x"}, values)

	_, err = splitLine(`1;"Planta;x`, ';')
	assert.ErrorIs(t, err, errOpenQuote)
}

func TestLoad_UTF8CommaDelimited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "production.csv")
	content := "\ufeffano,region,cd_planta,planta,mes,especie,tipo_elaboración,toneladas_mp,toneladas_elaboradas\n" +
		"2019,10,77,\"Planta, Sur\",6,Salmón,Congelado,250.5,200\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	res, err := Load(context.Background(), path, normalize.Production, func(p domain.Production) string { return p.Region }, Options{Encoding: "utf-8", Delimiter: ',', RegionalFilter: true})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	p := res.Records[0]
	assert.Equal(t, 2019, p.Year)
	assert.Equal(t, "LAGOS", p.Region)
	assert.Equal(t, "PLANTA, SUR", p.Plant)
	assert.Equal(t, "SALMÓN", p.Species)
	assert.Equal(t, "CONGELADO", p.ElaborationType)
	assert.InDelta(t, 250.5, p.RawTons, 1e-9)
}

func TestLoad_UnsupportedEncoding(t *testing.T) {
	path := writeLatin1(t, t.TempDir(), "landings.csv", landingsCSV)

	_, err := Load(context.Background(), path, normalize.Landing, landingRegion, Options{Encoding: "klingon-8"})
	assert.Error(t, err)
}

func TestLoad_CanceledContext(t *testing.T) {
	path := writeLatin1(t, t.TempDir(), "landings.csv", landingsCSV)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, path, normalize.Landing, landingRegion, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeLatin1(t, dir, filepath.Join("BD_desembarque", "BD_desembarque.csv"), landingsCSV)
	writeLatin1(t, dir, filepath.Join("BD_plantas", "BD_plantas.csv"),
		"Id;Ano;Region;Código Planta;Nombre_Planta;Mes;Código_Especie;Nombre_especie;tipo_elaboracion;Materia prima;Producción\n"+
			"1;2021;Magallanes;55;Austral;6;9;Centolla;Fresco;10,25;8,5\n"+
			"2;2021;Valparaíso;56;Centro;6;9;Jibia;Fresco;1;1\n")

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)
	cfg.Data.BasePath = dir

	snap, report, err := LoadAll(context.Background(), cfg.Data)
	require.NoError(t, err)

	assert.Len(t, snap.Landings, 3)
	assert.Empty(t, snap.Production, "missing production file loads as empty")
	require.Len(t, snap.Plants, 1)
	assert.Equal(t, 55, snap.Plants[0].PlantID)

	require.Len(t, report.Files, 3)
	assert.Equal(t, 1, report.Files[2].Filtered)
	assert.Equal(t, 4, report.Kept())
}
