// Package symbols holds the static naming table for NES hardware registers
// and interrupt vectors. The loader core does not interpret these, they are
// metadata handed to the analysis host so it can label addresses in its
// disassembly output.
package symbols

// Symbol names a fixed address of the CPU address space.
type Symbol struct {
	Addr uint16
	Name string
}

// HW is the naming table for interrupt vectors, PPU registers and APU/IO
// registers.
var HW = []Symbol{
	{0xFFFA, "NMI_vector"},
	{0xFFFC, "RESET_vector"},
	{0xFFFE, "IRQ_vector"},

	{0x2000, "PPU_Control_Register_1"},
	{0x2001, "PPU_Control_Register_2"},
	{0x2002, "PPU_Status_Register"},
	{0x2003, "SPR-RAM_Address_Register"},
	{0x2004, "SPR-RAM_Data_Register"},
	{0x2005, "PPU_Background_Scrolling_Offset"},
	{0x2006, "VRAM_Address_Register"},
	{0x2007, "VRAM_Read/Write_Data_Register"},

	{0x4000, "APU_Channel_1_(Rectangle)_Volume/Decay"},
	{0x4001, "APU_Channel_1_(Rectangle)_Sweep"},
	{0x4002, "APU_Channel_1_(Rectangle)_Frequency"},
	{0x4003, "APU_Channel_1_(Rectangle)_Length"},
	{0x4004, "APU_Channel_2_(Rectangle)_Volume/Decay"},
	{0x4005, "APU_Channel_2_(Rectangle)_Sweep"},
	{0x4006, "APU_Channel_2_(Rectangle)_Frequency"},
	{0x4007, "APU_Channel_2_(Rectangle)_Length"},
	{0x4008, "APU_Channel_3_(Triangle)_Linear_Counter"},
	{0x4009, "APU_Channel_3_(Triangle)_N/A"},
	{0x400A, "APU_Channel_3_(Triangle)_Frequency"},
	{0x400B, "APU_Channel_3_(Triangle)_Length"},
	{0x400C, "APU_Channel_4_(Noise)_Volume/Decay"},
	{0x400D, "APU_Channel_4_(Noise)_N/A"},
	{0x400E, "APU_Channel_4_(Noise)_Frequency"},
	{0x400F, "APU_Channel_4_(Noise)_Length"},
	{0x4010, "APU_Channel_5_(DMC)_Play_mode_and_DMA_frequency"},
	{0x4011, "APU_Channel_5_(DMC)_Delta_counter_load_register"},
	{0x4012, "APU_Channel_5_(DMC)_Address_load_register"},
	{0x4013, "APU_Channel_5_(DMC)_Length_register"},
	{0x4014, "SPR-RAM_DMA_Register"},
	{0x4015, "DMC/IRQ/length_counter_status/channel_enable_register"},
	{0x4016, "Joypad_#1_(RW)"},
	{0x4017, "Joypad_#2/APU_SOFTCLK_(RW)"},
}

// Lookup returns the name attached to addr, or the empty string.
func Lookup(addr uint16) string {
	for _, s := range HW {
		if s.Addr == addr {
			return s.Name
		}
	}
	return ""
}
