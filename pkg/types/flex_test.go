package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productInput struct {
	Precio       FlexDecimal `json:"precio"`
	PrecioOferta FlexDecimal `json:"precio_oferta"`
	Stock        FlexInt     `json:"stock"`
	StockCritico FlexInt     `json:"stock_critico"`
	EnOferta     FlexBool    `json:"en_oferta"`
}

func TestFlexNumbersAcceptNumbersAndStrings(t *testing.T) {
	var in productInput
	require.NoError(t, json.Unmarshal([]byte(`{"precio":"12990.50","stock":"50","stock_critico":5,"en_oferta":"1"}`), &in))

	assert.True(t, in.Precio.Set)
	assert.Equal(t, "12990.5", in.Precio.OrZero().String())
	assert.Equal(t, 50, in.Stock.OrZero())
	require.NotNil(t, in.StockCritico.Value)
	assert.Equal(t, 5, *in.StockCritico.Value)
	assert.True(t, in.EnOferta.Value)

	assert.False(t, in.PrecioOferta.Set)
	assert.False(t, in.PrecioOferta.Value.Valid)
}

func TestFlexNumbersNullAndBlank(t *testing.T) {
	var in productInput
	require.NoError(t, json.Unmarshal([]byte(`{"precio":null,"precio_oferta":"","stock":null}`), &in))

	assert.True(t, in.Precio.Set)
	assert.False(t, in.Precio.Value.Valid)
	assert.True(t, in.PrecioOferta.Set)
	assert.False(t, in.PrecioOferta.Value.Valid)
	assert.True(t, in.Stock.Set)
	assert.Nil(t, in.Stock.Value)
	assert.Equal(t, 0, in.Stock.OrZero())
}

func TestFlexNumbersRejectMalformed(t *testing.T) {
	var in productInput
	assert.Error(t, json.Unmarshal([]byte(`{"precio":"doce"}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"stock":"4.5"}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"stock":true}`), &in))

	_, err := ParseFlexInt("abc")
	assert.Error(t, err)
	for _, raw := range []string{"1e19", "99999999999999999999", "-99999999999999999999"} {
		_, err = ParseFlexInt(raw)
		assert.Error(t, err, raw)
	}
	assert.Error(t, json.Unmarshal([]byte(`{"stock":1e19}`), &in))
	big, err := ParseFlexInt("1e3")
	require.NoError(t, err)
	assert.Equal(t, 1000, big.OrZero())
	v, err := ParseFlexInt("50.0")
	require.NoError(t, err)
	assert.Equal(t, 50, v.OrZero())
}

func TestFlexBoolTruthyValues(t *testing.T) {
	cases := map[string]bool{
		`true`:    true,
		`"true"`:  true,
		`"TRUE"`:  true,
		`1`:       true,
		`"1"`:     true,
		`false`:   false,
		`0`:       false,
		`"0"`:     false,
		`"yes"`:   false,
		`2`:       false,
		`null`:    false,
		`"false"`: false,
	}
	for raw, want := range cases {
		var in productInput
		require.NoError(t, json.Unmarshal([]byte(`{"en_oferta":`+raw+`}`), &in), raw)
		assert.Equal(t, want, in.EnOferta.Value, raw)
	}

	assert.True(t, ParseFlexBool(" True ").Value)
	assert.False(t, ParseFlexBool("si").Value)
}

func TestEmbeddedJSONDecode(t *testing.T) {
	type buyer struct {
		Nombre string `json:"nombre"`
		Email  string `json:"email"`
	}
	type payload struct {
		Comprador EmbeddedJSON `json:"comprador"`
	}

	var direct payload
	require.NoError(t, json.Unmarshal([]byte(`{"comprador":{"nombre":"Ana","email":"ana@duoc.cl"}}`), &direct))
	var b buyer
	require.NoError(t, direct.Comprador.Decode(&b))
	assert.Equal(t, "Ana", b.Nombre)

	var encoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"comprador":"{\"nombre\":\"Luis\",\"email\":\"luis@duoc.cl\"}"}`), &encoded))
	b = buyer{}
	require.NoError(t, encoded.Comprador.Decode(&b))
	assert.Equal(t, "luis@duoc.cl", b.Email)

	var broken payload
	require.NoError(t, json.Unmarshal([]byte(`{"comprador":"{nombre:"}`), &broken))
	assert.Error(t, broken.Comprador.Decode(&b))

	var missing payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &missing))
	assert.True(t, missing.Comprador.IsZero())
	assert.Error(t, missing.Comprador.Decode(&b))
}
