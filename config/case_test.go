package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeCase(t *testing.T) {
	tests := []struct {
		input    string
		format   IdentifierFormat
		expected string
	}{
		{"timer_control", Original, "timer_control"},
		{"Mixed_NAME%s", Original, "Mixed_NAME%s"},
		{"timer_control", Pascal, "TimerControl"},
		{"timer_control", Camel, "timerControl"},
		{"TimerControl", Snake, "timer_control"},
		{"timerControl", Constant, "TIMER_CONTROL"},
		{"timer_control", Constant, "TIMER_CONTROL"},
		{"Timer_Control", Upper, "TIMER_CONTROL"},
		{"Timer_Control", Lower, "timer_control"},
		{"", Pascal, ""},
		{"timer-control.reg", Constant, "TIMER_CONTROL_REG"},
		{"HTTPServer", Snake, "http_server"},

		// Digits stay inside their word.
		{"USART_CR1", Snake, "usart_cr1"},
		{"usart_cr1", Constant, "USART_CR1"},
		{"TIM2_CR1", Snake, "tim2_cr1"},
		{"USART_CR1", Pascal, "UsartCr1"},
		{"USART_CR1", Camel, "usartCr1"},
		{"tim2Cr1", Constant, "TIM2_CR1"},
		{"I2C1", Camel, "i2c1"},
		{"I2C1", Pascal, "I2C1"},
		{"DMA2D", Constant, "DMA2D"},
		{"dma2d_isr", Pascal, "Dma2dIsr"},

		// Placeholders survive conversion.
		{"timer%s_control", Pascal, "Timer%sControl"},
		{"timer%s_control", Camel, "timer%sControl"},
		{"timer[%s]", Upper, "TIMER[%s]"},
		{"channel[%s]", Pascal, "Channel[%s]"},
		{"%s", Snake, "%s"},
	}

	for _, test := range tests {
		actual := ChangeCase(test.input, test.format)
		assert.Equal(t, test.expected, actual, "ChangeCase(%q, %v)", test.input, test.format)
	}
}

func TestChangeCaseIdempotent(t *testing.T) {
	inputs := []string{
		"timer_control", "TimerControl", "timerControl", "TIMER_CONTROL", "channel[%s]",
		"USART_CR1", "TIM2_CR1", "tim2_cr1", "I2C1", "DMA2D", "HTTPServer", "a b", "ab2_c",
	}
	formats := []IdentifierFormat{Original, Camel, Pascal, Snake, Constant, Upper, Lower}

	for _, f := range formats {
		for _, in := range inputs {
			once := ChangeCase(in, f)
			assert.Equal(t, once, ChangeCase(once, f), "%v applied twice to %q", f, in)
		}
	}
}

func TestChangeCaseKeepsCasedNames(t *testing.T) {
	tests := map[IdentifierFormat][]string{
		Constant: {"USART_CR1", "TIM2_CR1", "I2C1", "DMA2D", "GPIO_A"},
		Snake:    {"tim2_cr1", "usart_cr1", "i2c1", "dma2d"},
		Pascal:   {"UsartCr1", "Tim2Cr1", "I2C1", "DMA2D", "HTTPServer", "AB"},
		Camel:    {"usartCr1", "tim2Cr1", "i2c1", "channel%sData"},
		Upper:    {"USART_CR1", "I2C1"},
		Lower:    {"usart_cr1", "i2c1"},
	}

	for f, names := range tests {
		for _, name := range names {
			assert.Equal(t, name, ChangeCase(name, f), "ChangeCase(%q, %v)", name, f)
		}
	}
}
