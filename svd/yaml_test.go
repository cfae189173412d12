package svd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uartYAML = `
peripherals:
  - name: UART0
    description: Universal asynchronous receiver transmitter
    baseAddress: 0x40001000
    size: 32
    access: read-write
    addressBlock:
      - offset: 0
        size: 0x100
        usage: registers
    interrupt:
      - name: UART0
        value: 12
    registers:
      - register:
          name: CTRL
          addressOffset: 0x0
          resetValue: 0
          fields:
            - name: EN
              bitOffset: 0
              bitWidth: 1
              access: read-write
      - cluster:
          name: "CH[%s]"
          addressOffset: 0x10
          dimElement:
            dim: 2
            dimIncrement: 8
          children:
            - register:
                name: DATA
                addressOffset: 0
  - name: UART1
    baseAddress: 0x40002000
    derivedFrom: UART0
`

func TestLoadPeripherals(t *testing.T) {
	peripherals, err := LoadPeripherals([]byte(uartYAML))
	require.NoError(t, err)
	require.Len(t, peripherals, 2)

	uart := peripherals[0]
	assert.Equal(t, "UART0", uart.Name)
	assert.Equal(t, uint64(0x40001000), uart.BaseAddress)
	assert.False(t, uart.IsArray())
	require.NotNil(t, uart.Size)
	assert.Equal(t, uint32(32), *uart.Size)
	require.NotNil(t, uart.Access)
	assert.Equal(t, ReadWrite, *uart.Access)
	require.Len(t, uart.AddressBlocks, 1)
	assert.Equal(t, uint32(0x100), uart.AddressBlocks[0].Size)
	require.Len(t, uart.Interrupts, 1)
	assert.Nil(t, uart.DisplayName)

	require.Len(t, uart.Registers, 2)
	reg, ok := uart.Registers[0].(*Register)
	require.True(t, ok)
	assert.Equal(t, "CTRL", reg.GetName())
	require.Len(t, reg.Fields, 1)
	assert.Equal(t, uint32(1), reg.Fields[0].Width)

	cluster, ok := uart.Registers[1].(*Cluster)
	require.True(t, ok)
	assert.Equal(t, uint32(0x10), cluster.GetAddressOffset())
	require.True(t, cluster.IsArray())
	assert.Equal(t, uint32(2), cluster.Dim.Dim)
	require.Len(t, cluster.Children, 1)

	derived := peripherals[1]
	require.NotNil(t, derived.DerivedFrom)
	assert.Equal(t, "UART0", *derived.DerivedFrom)
	assert.Nil(t, derived.Registers)
}

func TestLoadPeripheralsEmptyRegisters(t *testing.T) {
	peripherals, err := LoadPeripherals([]byte("peripherals:\n  - name: P\n    baseAddress: 0\n    registers: []\n"))
	require.NoError(t, err)
	require.Len(t, peripherals, 1)
	assert.NotNil(t, peripherals[0].Registers)
	assert.Empty(t, peripherals[0].Registers)
}

func TestLoadPeripheralsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
	}{
		{
			"unknownAccess",
			"peripherals:\n  - name: P\n    baseAddress: 0\n    access: rw\n",
			ErrUnknownValue,
		},
		{
			"registerAndCluster",
			"peripherals:\n  - name: P\n    baseAddress: 0\n    registers:\n      - register: {name: A}\n        cluster: {name: B}\n",
			ErrUnknownListItem,
		},
		{
			"emptyEntry",
			"peripherals:\n  - name: P\n    baseAddress: 0\n    registers:\n      - {}\n",
			ErrUnknownListItem,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadPeripherals([]byte(test.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.err), "got %v", err)
		})
	}
}

func TestBitRange(t *testing.T) {
	br := BitRange{Offset: 4, Width: 3}
	assert.Equal(t, uint32(4), br.LSB())
	assert.Equal(t, uint32(6), br.MSB())
	assert.Equal(t, uint32(4), BitRange{Offset: 4}.MSB())
}
